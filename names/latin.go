package names

// FamilyNames holds the target family names in their common English
// spellings, including case variants observed in leaked corpora.
var FamilyNames = []Entry{
	{"yahya", []string{"yahya", "yahia", "yehya", "yehia", "yhya", "yahiya", "Yahya", "Yahia", "Yehya", "Yehia", "YAHYA", "YAHIA"}},
	{"nour", []string{"nour", "noor", "nur", "noura", "noora", "nura", "Nour", "Noor", "Nur", "Noura", "NOUR", "NOOR"}},
	{"sana", []string{"sana", "sanaa", "sanna", "Sana", "Sanaa", "SANA", "SANAA"}},
	{"othman", []string{"othman", "osman", "uthman", "othmann", "Othman", "Osman", "Uthman", "OTHMAN", "OSMAN"}},
	{"majed", []string{"majed", "majid", "maged", "magid", "majd", "Majed", "Majid", "Maged", "MAJED", "MAJID"}},
}

// JordanCities holds English spellings of Jordanian cities.
var JordanCities = []Entry{
	{"amman", []string{"amman", "Amman", "AMMAN", "aman", "Aman"}},
	{"irbid", []string{"irbid", "Irbid", "IRBID", "arbid", "Arbid"}},
	{"zarqa", []string{"zarqa", "Zarqa", "ZARQA", "zarka", "Zarka"}},
	{"aqaba", []string{"aqaba", "Aqaba", "AQABA", "akaba", "Akaba"}},
	{"salt", []string{"salt", "Salt", "SALT", "alsalt", "Alsalt"}},
	{"madaba", []string{"madaba", "Madaba", "MADABA"}},
	{"karak", []string{"karak", "Karak", "KARAK", "kerak", "Kerak"}},
	{"jerash", []string{"jerash", "Jerash", "JERASH", "jarash", "Jarash"}},
	{"ajloun", []string{"ajloun", "Ajloun", "AJLOUN", "ajlun", "Ajlun"}},
	{"mafraq", []string{"mafraq", "Mafraq", "MAFRAQ"}},
	{"tafilah", []string{"tafilah", "Tafilah", "TAFILAH", "tafila", "Tafila"}},
	{"maan", []string{"maan", "Maan", "MAAN", "ma'an", "Ma'an"}},
	{"petra", []string{"petra", "Petra", "PETRA"}},
	{"wadi_rum", []string{"wadirum", "Wadirum", "WadiRum", "wadi_rum"}},
}

// SyriaCities holds English spellings of Syrian cities.
var SyriaCities = []Entry{
	{"damascus", []string{"damascus", "Damascus", "DAMASCUS", "dimashq", "Dimashq"}},
	{"aleppo", []string{"aleppo", "Aleppo", "ALEPPO", "halab", "Halab"}},
	{"homs", []string{"homs", "Homs", "HOMS", "hims", "Hims"}},
	{"hama", []string{"hama", "Hama", "HAMA", "hamah", "Hamah"}},
	{"latakia", []string{"latakia", "Latakia", "LATAKIA", "lattakia", "Lattakia"}},
	{"deir_ezzor", []string{"deirezzor", "DeirEzzor", "deir_ezzor", "deirezor", "DeirEzor"}},
	{"raqqa", []string{"raqqa", "Raqqa", "RAQQA", "rakka", "Rakka"}},
	{"idlib", []string{"idlib", "Idlib", "IDLIB"}},
	{"daraa", []string{"daraa", "Daraa", "DARAA", "deraa", "Deraa"}},
	{"tartus", []string{"tartus", "Tartus", "TARTUS", "tartous", "Tartous"}},
	{"qamishli", []string{"qamishli", "Qamishli", "QAMISHLI", "kamishli", "Kamishli"}},
	{"palmyra", []string{"palmyra", "Palmyra", "PALMYRA", "tadmor", "Tadmor"}},
	{"suwayda", []string{"suwayda", "Suwayda", "SUWAYDA", "sweida", "Sweida"}},
}

// SaudiCities holds English spellings of Saudi cities.
var SaudiCities = []Entry{
	{"riyadh", []string{"riyadh", "Riyadh", "RIYADH", "riyad", "Riyad"}},
	{"jeddah", []string{"jeddah", "Jeddah", "JEDDAH", "jidda", "Jidda", "jedda", "Jedda"}},
	{"mecca", []string{"mecca", "Mecca", "MECCA", "makkah", "Makkah"}},
	{"medina", []string{"medina", "Medina", "MEDINA", "madinah", "Madinah"}},
	{"dammam", []string{"dammam", "Dammam", "DAMMAM"}},
	{"khobar", []string{"khobar", "Khobar", "KHOBAR", "alkhobar", "AlKhobar"}},
	{"dhahran", []string{"dhahran", "Dhahran", "DHAHRAN"}},
	{"tabuk", []string{"tabuk", "Tabuk", "TABUK", "tabouk", "Tabouk"}},
	{"taif", []string{"taif", "Taif", "TAIF", "tayef", "Tayef"}},
	{"abha", []string{"abha", "Abha", "ABHA"}},
	{"khamis", []string{"khamis", "Khamis", "KHAMIS", "khamismushait", "KhamisMushait"}},
	{"jubail", []string{"jubail", "Jubail", "JUBAIL", "jubayl", "Jubayl"}},
	{"yanbu", []string{"yanbu", "Yanbu", "YANBU", "yenbu", "Yenbu"}},
	{"hofuf", []string{"hofuf", "Hofuf", "HOFUF", "alhasa", "AlHasa", "ahsa", "Ahsa"}},
	{"najran", []string{"najran", "Najran", "NAJRAN"}},
	{"jazan", []string{"jazan", "Jazan", "JAZAN", "jizan", "Jizan", "gizan", "Gizan"}},
	{"qatif", []string{"qatif", "Qatif", "QATIF", "katif", "Katif"}},
	{"buraidah", []string{"buraidah", "Buraidah", "BURAIDAH", "buraydah", "Buraydah"}},
	{"hail", []string{"hail", "Hail", "HAIL", "hayel", "Hayel"}},
	{"arar", []string{"arar", "Arar", "ARAR"}},
	{"sakaka", []string{"sakaka", "Sakaka", "SAKAKA"}},
}

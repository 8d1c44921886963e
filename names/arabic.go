package names

// FamilyNamesArabic holds the target family names in Arabic script.
var FamilyNamesArabic = []Entry{
	{"yahya", []string{"يحيى", "يحيا", "يحي"}},
	{"nour", []string{"نور", "نورا", "نوره", "نورة"}},
	{"sana", []string{"سنا", "سناء", "سنى"}},
	{"othman", []string{"عثمان", "عصمان"}},
	{"majed", []string{"ماجد", "مجد", "مجيد"}},
}

// JordanCitiesArabic holds Arabic spellings of Jordanian cities,
// with and without the definite article.
var JordanCitiesArabic = []Entry{
	{"amman", []string{"عمان", "عمّان"}},
	{"irbid", []string{"اربد", "إربد"}},
	{"zarqa", []string{"الزرقاء", "زرقاء"}},
	{"aqaba", []string{"العقبة", "عقبة"}},
	{"salt", []string{"السلط", "سلط"}},
	{"madaba", []string{"مادبا", "مأدبا"}},
	{"karak", []string{"الكرك", "كرك"}},
	{"jerash", []string{"جرش"}},
	{"ajloun", []string{"عجلون"}},
	{"mafraq", []string{"المفرق", "مفرق"}},
	{"tafilah", []string{"الطفيلة", "طفيلة"}},
	{"maan", []string{"معان", "معن"}},
	{"petra", []string{"البتراء", "بترا"}},
}

// SyriaCitiesArabic holds Arabic spellings of Syrian cities.
var SyriaCitiesArabic = []Entry{
	{"damascus", []string{"دمشق", "الشام", "شام"}},
	{"aleppo", []string{"حلب"}},
	{"homs", []string{"حمص"}},
	{"hama", []string{"حماة", "حماه"}},
	{"latakia", []string{"اللاذقية", "لاذقية"}},
	{"deir_ezzor", []string{"دير الزور", "ديرالزور"}},
	{"raqqa", []string{"الرقة", "رقة"}},
	{"idlib", []string{"إدلب", "ادلب"}},
	{"daraa", []string{"درعا", "درعة"}},
	{"tartus", []string{"طرطوس"}},
	{"qamishli", []string{"القامشلي", "قامشلي"}},
	{"palmyra", []string{"تدمر"}},
	{"suwayda", []string{"السويداء", "سويداء"}},
}

package pattern

// Catalog is the full template table. Callers may append their own
// entries before generating; the engine treats it as plain data.
var Catalog = []Pattern{
	// Basic verb forms
	{"فعل", "base verb"},             // كتب
	{"فعّل", "intensive"},            // كتّب
	{"فاعل", "active participle"},    // كاتب
	{"فعيل", "adjective form"},       // كريم
	{"فعول", "adjective form 2"},     // صبور
	{"فعال", "noun form"},            // كتاب
	{"فعالة", "noun feminine"},       // كتابة
	{"فاعلة", "feminine participle"}, // كاتبة

	// Derived forms
	{"مفعل", "place/instrument"},        // مكتب
	{"مفعلة", "place feminine"},         // مكتبة
	{"مفعول", "passive participle"},     // مكتوب
	{"افعل", "comparative/superlative"}, // أكبر
	{"فعلان", "adjective ending"},       // غضبان
	{"فعلة", "single instance"},         // ضربة

	// Name patterns, very common in passwords
	{"محمد", "muhammad pattern"}, // from root حمد
	{"احمد", "ahmad pattern"},
	{"فعلي", "nisba adjective"}, // عربي
	{"فعلية", "nisba feminine"}, // عربية

	// Extended forms
	{"تفعيل", "verbal noun form II"},   // تكبير
	{"مفاعلة", "verbal noun form III"}, // مكاتبة
	{"افعال", "verbal noun form IV"},   // إكرام
	{"تفعّل", "form V verb"},           // تعلّم
	{"تفاعل", "form VI verb"},          // تعاون
	{"انفعال", "form VII noun"},        // انكسار
	{"افتعال", "form VIII noun"},       // اجتماع
	{"استفعال", "form X noun"},         // استقبال

	// Broken plurals
	{"فعول", "broken plural 1"},  // بيوت
	{"افعال", "broken plural 2"}, // أعمال
	{"فعلاء", "plural form"},     // علماء
	{"فواعل", "plural form 2"},   // كواتب
	{"مفاعيل", "plural form 3"},  // مكاتيب
}

// Simple is the reduced template set covering the forms that dominate
// real password material. Generation over Simple runs an order of
// magnitude faster than over the full Catalog.
var Simple = []Pattern{
	{Template: "فعل"},   // كتب
	{Template: "فعّل"},  // كتّب
	{Template: "فاعل"},  // كاتب
	{Template: "فعيل"},  // كريم
	{Template: "فعول"},  // صبور
	{Template: "فعال"},  // كتاب
	{Template: "فعالة"}, // كتابة
	{Template: "مفعل"},  // مكتب
	{Template: "مفعول"}, // مكتوب
	{Template: "افعل"},  // أكبر
	{Template: "فعلي"},  // عربي
	{Template: "تفعيل"}, // تكبير
}

// NameForms is the template set tuned for personal names: it swaps the
// rare intensive فعّل for فعلان, the form behind names like سلمان and
// عثمان. The unified password generator runs on this set.
var NameForms = []Pattern{
	{Template: "فعل"},   // كتب
	{Template: "فاعل"},  // كاتب، حامد
	{Template: "فعيل"},  // كريم، حميد
	{Template: "فعول"},  // صبور
	{Template: "فعال"},  // كتاب، جمال
	{Template: "مفعل"},  // مكتب
	{Template: "مفعول"}, // مكتوب، محمود
	{Template: "افعل"},  // أكبر، أحمد
	{Template: "فعلي"},  // عربي، علي
	{Template: "فعلان"}, // سلمان، عثمان
	{Template: "فعالة"}, // كتابة، سلامة
	{Template: "تفعيل"}, // تكبير
}

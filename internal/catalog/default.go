package catalog

var defaultItems = []Item{
	{
		ID:            1,
		DisplayName:   "AVENTUS",
		BrandName:     "CREED",
		Description:   "Исключительный аромат, вдохновленный драматической судьбой императора, прославляющий силу, власть и успех.",
		HighlightText: "фруктовые, древесные",
		Theme:         Theme{Background: "#0a0a0a", Accent: "#a0a0a0", Text: "#ffffff"},
		ImageRef:      "https://images.unsplash.com/photo-1594035910387-406691aa9316?q=80&w=2000&auto=format&fit=crop",
		VideoRef:      "assets/Creed.m4v",
		VideoEnd:      VideoEndFreeze,
	},
	{
		ID:            2,
		DisplayName:   "GOOD GIRL GONE BAD",
		BrandName:     "KILIAN",
		Description:   "Композиция строится на контрасте невинности и соблазна, где ключевую роль играет османтус с его характерным абрикосовым оттенком.",
		HighlightText: "цветочно-фруктовые",
		Theme:         Theme{Background: "#1a1a1a", Accent: "#d4af37", Text: "#ffffff"},
		ImageRef:      "https://images.unsplash.com/photo-1519669576452-9856f7ef5752?q=80&w=2000&auto=format&fit=crop",
		VideoRef:      "assets/Kilian.mp4",
		VideoEnd:      VideoEndFreeze,
	},
	{
		ID:            3,
		DisplayName:   "BLACK ORCHID",
		BrandName:     "TOM FORD",
		Description:   "Восточно-цветочная композиция с глубоким, темным и провокационным характером.",
		HighlightText: "землистый трюфель, горький шоколад",
		Theme:         Theme{Background: "#0f0518", Accent: "#d4af37", Text: "#efe5d9"},
		ImageRef:      "https://images.unsplash.com/photo-1541643600914-78b084683601?q=80&w=2000&auto=format&fit=crop",
		VideoRef:      "assets/Orchid.mp4",
		VideoEnd:      VideoEndFreeze,
	},
}

// Default returns the built-in product catalog.
func Default() *Catalog {
	c, err := New(defaultItems)
	if err != nil {
		panic(err)
	}
	return c
}

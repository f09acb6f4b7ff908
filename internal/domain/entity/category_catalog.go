package entity

// PredefinedCategories catálogo inicial de categorías (alimentos y limpieza).
// Devuelve una copia nueva en cada llamada.
func PredefinedCategories() []Category {
	return []Category{
		{Name: "Frutas", Type: string(TypeAlimento), Group: "Frescos y Perecederos", Icon: "fa-apple-alt"},
		{Name: "Verduras", Type: string(TypeAlimento), Group: "Frescos y Perecederos", Icon: "fa-carrot"},
		{Name: "Carnes", Type: string(TypeAlimento), Group: "Frescos y Perecederos", Icon: "fa-drumstick-bite"},
		{Name: "Pescados", Type: string(TypeAlimento), Group: "Frescos y Perecederos", Icon: "fa-fish"},
		{Name: "Lácteos", Type: string(TypeAlimento), Group: "Frescos y Perecederos", Icon: "fa-cheese"},

		{Name: "Conservas", Type: string(TypeAlimento), Group: "Procesados y Envasados", Icon: "fa-jar"},
		{Name: "Embutidos", Type: string(TypeAlimento), Group: "Procesados y Envasados", Icon: "fa-bacon"},
		{Name: "Comidas Preparadas", Type: string(TypeAlimento), Group: "Procesados y Envasados", Icon: "fa-utensils"},
		{Name: "Sopas Instantáneas", Type: string(TypeAlimento), Group: "Procesados y Envasados", Icon: "fa-bowl-food"},

		{Name: "Vegetales Congelados", Type: string(TypeAlimento), Group: "Congelados", Icon: "fa-snowflake"},
		{Name: "Comidas Congeladas", Type: string(TypeAlimento), Group: "Congelados", Icon: "fa-snowflake"},
		{Name: "Mariscos Congelados", Type: string(TypeAlimento), Group: "Congelados", Icon: "fa-snowflake"},
		{Name: "Postres Congelados", Type: string(TypeAlimento), Group: "Congelados", Icon: "fa-ice-cream"},

		{Name: "Pan", Type: string(TypeAlimento), Group: "Panadería y Repostería", Icon: "fa-bread-slice"},
		{Name: "Bollería", Type: string(TypeAlimento), Group: "Panadería y Repostería", Icon: "fa-cookie"},
		{Name: "Pasteles", Type: string(TypeAlimento), Group: "Panadería y Repostería", Icon: "fa-cake-candles"},
		{Name: "Galletas", Type: string(TypeAlimento), Group: "Panadería y Repostería", Icon: "fa-cookie-bite"},

		{Name: "Arroz", Type: string(TypeAlimento), Group: "Cereales y Granos", Icon: "fa-wheat"},
		{Name: "Pastas", Type: string(TypeAlimento), Group: "Cereales y Granos", Icon: "fa-wheat"},
		{Name: "Legumbres", Type: string(TypeAlimento), Group: "Cereales y Granos", Icon: "fa-seedling"},
		{Name: "Cereales Desayuno", Type: string(TypeAlimento), Group: "Cereales y Granos", Icon: "fa-wheat"},

		{Name: "Jugos", Type: string(TypeAlimento), Group: "Bebidas", Icon: "fa-glass-water"},
		{Name: "Refrescos", Type: string(TypeAlimento), Group: "Bebidas", Icon: "fa-bottle-water"},
		{Name: "Agua Embotellada", Type: string(TypeAlimento), Group: "Bebidas", Icon: "fa-bottle-water"},
		{Name: "Bebidas Energéticas", Type: string(TypeAlimento), Group: "Bebidas", Icon: "fa-bolt"},
		{Name: "Bebidas Alcohólicas", Type: string(TypeAlimento), Group: "Bebidas", Icon: "fa-wine-bottle"},

		{Name: "Chocolates", Type: string(TypeAlimento), Group: "Snacks y Dulces", Icon: "fa-candy-bar"},
		{Name: "Galletitas", Type: string(TypeAlimento), Group: "Snacks y Dulces", Icon: "fa-cookie"},
		{Name: "Papas Fritas", Type: string(TypeAlimento), Group: "Snacks y Dulces", Icon: "fa-french-fries"},
		{Name: "Aperitivos", Type: string(TypeAlimento), Group: "Snacks y Dulces", Icon: "fa-pizza-slice"},

		{Name: "Detergentes", Type: string(TypeLimpieza), Group: "Limpieza del Hogar", Icon: "fa-jug-detergent"},
		{Name: "Limpiadores Multiusos", Type: string(TypeLimpieza), Group: "Limpieza del Hogar", Icon: "fa-spray-can-sparkles"},
		{Name: "Desinfectantes", Type: string(TypeLimpieza), Group: "Limpieza del Hogar", Icon: "fa-spray-can"},
		{Name: "Productos para Pisos", Type: string(TypeLimpieza), Group: "Limpieza del Hogar", Icon: "fa-broom"},
		{Name: "Productos para Baños", Type: string(TypeLimpieza), Group: "Limpieza del Hogar", Icon: "fa-toilet"},

		{Name: "Jabones", Type: string(TypeLimpieza), Group: "Cuidado Personal", Icon: "fa-soap"},
		{Name: "Champús", Type: string(TypeLimpieza), Group: "Cuidado Personal", Icon: "fa-pump-soap"},
		{Name: "Acondicionadores", Type: string(TypeLimpieza), Group: "Cuidado Personal", Icon: "fa-pump-soap"},
		{Name: "Cremas", Type: string(TypeLimpieza), Group: "Cuidado Personal", Icon: "fa-jar"},
		{Name: "Desodorantes", Type: string(TypeLimpieza), Group: "Cuidado Personal", Icon: "fa-spray-can"},
		{Name: "Pastas Dentales", Type: string(TypeLimpieza), Group: "Cuidado Personal", Icon: "fa-tooth"},

		{Name: "Limpiadores para Vidrios", Type: string(TypeLimpieza), Group: "Productos Especializados", Icon: "fa-spray-can"},
		{Name: "Antiincrustantes", Type: string(TypeLimpieza), Group: "Productos Especializados", Icon: "fa-brush"},
		{Name: "Esponjas", Type: string(TypeLimpieza), Group: "Productos Especializados", Icon: "fa-sponge"},
		{Name: "Paños", Type: string(TypeLimpieza), Group: "Productos Especializados", Icon: "fa-rag"},
		{Name: "Escobas", Type: string(TypeLimpieza), Group: "Productos Especializados", Icon: "fa-broom"},
	}
}

package grid

// RowMajor visits every cell of a w x h grid with the column varying fastest.
func RowMajor(w, h int, visit func(col, row int)) {
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			visit(col, row)
		}
	}
}

// ColMajor visits every cell of a w x h grid with the row varying fastest.
func ColMajor(w, h int, visit func(col, row int)) {
	for col := 0; col < w; col++ {
		for row := 0; row < h; row++ {
			visit(col, row)
		}
	}
}

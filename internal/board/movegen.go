package board

// GenerateActions enumerates all pseudo-legal actions for side in the
// given position. Enumeration order is deterministic (ascending cell
// index, then the sub-order below) since it feeds PVS move ordering at
// the root. Duplicate triples are not eliminated — the search treats
// repeats as distinct candidates with identical scores.
func GenerateActions(b *Board, side Colour) []Action {
	var actions []Action
	emit := func(start, mid, end int) {
		actions = append(actions, Action{Start: start, Mid: mid, End: end})
	}

	own := b.Colour(side)
	own.ForEach(func(i int) {
		cell := b.GetPiece(i)
		p := Top(cell)

		if !IsStack(cell) {
			generateSinglePieceActions(b, i, p, emit)
			return
		}
		generateStackActions(b, i, p, emit)
	})

	return actions
}

func generateSinglePieceActions(b *Board, i int, p Piece, emit func(start, mid, end int)) {
	for _, m := range N1(i) {
		if CanStack(b, p, m) {
			emit(i, i, m) // stack-only

			for _, nb := range N2(m) {
				e := nb.End
				if CanMove2(b, p, m, e) || (nb.Mid == i && CanMove1(b, p, e)) {
					emit(i, m, e)
				}
			}
			for _, e := range N1(m) {
				if CanMove1(b, p, e) || e == i {
					emit(i, m, e)
				}
			}
			continue
		}
		if CanMove1(b, p, m) {
			emit(i, NullIndex, m)
		}
	}
}

func generateStackActions(b *Board, i int, p Piece, emit func(start, mid, end int)) {
	for _, nb := range N2(i) {
		m := nb.End
		if !CanMove2(b, p, i, m) {
			continue
		}
		emit(i, NullIndex, m)
		for _, e := range N1(m) {
			if CanUnstack(b, p, e) || CanStack(b, p, e) {
				emit(i, m, e)
			}
		}
	}

	for _, m := range N1(i) {
		switch {
		case CanMove1(b, p, m):
			emit(i, NullIndex, m)
			emit(i, m, i) // move then unstack back onto origin

			for _, e := range N1(m) {
				if CanUnstack(b, p, e) || CanStack(b, p, e) {
					emit(i, m, e)
				}
			}
			for _, nb := range N2(m) {
				e := nb.End
				if CanMove2(b, p, m, e) {
					emit(i, m, e)
				}
			}

		case CanStack(b, p, m):
			emit(i, i, m) // stack-only

			for _, nb := range N2(m) {
				e := nb.End
				if CanMove2(b, p, m, e) || (nb.Mid == i && CanMove1(b, p, e)) {
					emit(i, m, e)
				}
			}
			for _, e := range N1(m) {
				if CanMove1(b, p, e) || e == i {
					emit(i, m, e)
				}
			}
		}

		if CanUnstack(b, p, m) {
			emit(i, i, m) // unstack-only
		}
	}
}

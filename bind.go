package tempo

// binding animates up to 4 float64 fields simultaneously. Start values are
// read from the fields on the first update, so a binding handed to a delayed
// tween animates from wherever the fields are when the tween becomes active.
type binding struct {
	fields  [4]*float64
	from    [4]float64
	to      [4]float64
	count   int
	started bool
}

func (b *binding) update(progress float64) {
	if !b.started {
		for i := 0; i < b.count; i++ {
			b.from[i] = *b.fields[i]
		}
		b.started = true
	}
	for i := 0; i < b.count; i++ {
		*b.fields[i] = b.from[i] + (b.to[i]-b.from[i])*progress
	}
}

// BindFloat returns an UpdateFunc that moves *target to the given value.
// Progress outside [0, 1] (elastic and back curves) overshoots accordingly.
func BindFloat(target *float64, to float64) UpdateFunc {
	b := &binding{count: 1}
	b.fields[0], b.to[0] = target, to
	return b.update
}

// BindVec returns an UpdateFunc that moves the pair (*x, *y) to (toX, toY).
func BindVec(x, y *float64, toX, toY float64) UpdateFunc {
	b := &binding{count: 2}
	b.fields[0], b.to[0] = x, toX
	b.fields[1], b.to[1] = y, toY
	return b.update
}

// BindRGBA returns an UpdateFunc that moves four color components to the
// target components in order R, G, B, A.
func BindRGBA(r, g, b, a *float64, to [4]float64) UpdateFunc {
	bd := &binding{count: 4, to: to}
	bd.fields = [4]*float64{r, g, b, a}
	return bd.update
}

// Chain fans one progress value out to several update functions, in order.
// Nil entries are skipped.
func Chain(fns ...UpdateFunc) UpdateFunc {
	return func(progress float64) {
		for _, fn := range fns {
			if fn != nil {
				fn(progress)
			}
		}
	}
}

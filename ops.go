package jsonvalue

// Free releases the payload of v and resets it to null. Children are freed
// recursively. Calling Free on a null Value does nothing.
func (v *Value) Free() {
	switch v.t {
	case TypeArray:
		for i := range v.a {
			v.a[i].Free()
		}
	case TypeObject:
		for i := range v.m {
			v.m[i].free()
		}
	}

	*v = Value{}
}

// SetNull is an alias for [Value.Free].
func (v *Value) SetNull() {
	v.Free()
}

// Clone returns a deep copy of v sharing no storage with it.
func (v *Value) Clone() Value {
	switch v.t {
	case TypeString:
		return Value{t: TypeString, s: ownedBytes(v.s)}
	case TypeArray:
		c := Value{t: TypeArray}
		if v.a != nil {
			c.a = make([]Value, len(v.a))
			for i := range v.a {
				c.a[i] = v.a[i].Clone()
			}
		}

		return c
	case TypeObject:
		c := Value{t: TypeObject}
		if v.m != nil {
			c.m = make([]Member, len(v.m))
			for i := range v.m {
				c.m[i] = Member{key: ownedBytes(v.m[i].key), val: v.m[i].val.Clone()}
			}
		}

		return c
	}

	return *v
}

// Copy frees dst and replaces it with a deep copy of src.
// src may be dst itself or any node inside dst.
func Copy(dst, src *Value) {
	if dst == src {
		return
	}

	c := src.Clone()
	dst.Free()
	*dst = c
}

// Move frees dst, transfers the payload of src into it and resets src to null.
// Moving a Value onto itself does nothing.
//
// dst must not be a node inside src: the tree would end up containing itself.
// Move panics in that case.
func Move(dst, src *Value) {
	if dst == src {
		return
	}

	if contains(src, dst) {
		panic("jsonvalue: move into a descendant of the source")
	}

	moved := *src
	*src = Value{}

	dst.Free()
	*dst = moved
}

// Swap exchanges the contents of a and b without copying payloads.
// It panics when one of them is a node inside the other.
func Swap(a, b *Value) {
	if a == b {
		return
	}

	if contains(a, b) || contains(b, a) {
		panic("jsonvalue: swap of a value with its own descendant")
	}

	*a, *b = *b, *a
}

// contains reports whether target is a node strictly below root.
func contains(root, target *Value) bool {
	switch root.t {
	case TypeArray:
		for i := range root.a {
			if &root.a[i] == target || contains(&root.a[i], target) {
				return true
			}
		}
	case TypeObject:
		for i := range root.m {
			if &root.m[i].val == target || contains(&root.m[i].val, target) {
				return true
			}
		}
	}

	return false
}

// Equal reports whether a and b are structurally equal.
//
// Numbers compare with ==, so NaN is never equal to itself. Arrays compare
// element by element in order. Objects compare regardless of member order:
// they must have the same member count, and every key of a must be found in b
// (first match) with an equal value. For objects with duplicate keys the
// result is well defined by that rule but may not be symmetric.
func Equal(a, b *Value) bool {
	if a.t != b.t {
		return false
	}

	switch a.t {
	case TypeBool:
		return a.b == b.b
	case TypeNumber:
		return a.n == b.n
	case TypeString:
		return string(a.s) == string(b.s)
	case TypeArray:
		if len(a.a) != len(b.a) {
			return false
		}

		for i := range a.a {
			if !Equal(&a.a[i], &b.a[i]) {
				return false
			}
		}

		return true
	case TypeObject:
		if len(a.m) != len(b.m) {
			return false
		}

		for i := range a.m {
			j := b.findObjectIndexBytes(a.m[i].key)
			if j == KeyNotExist || !Equal(&a.m[i].val, &b.m[j].val) {
				return false
			}
		}

		return true
	}

	return true
}

// Equal reports whether v and o are structurally equal. See [Equal].
func (v *Value) Equal(o *Value) bool {
	return Equal(v, o)
}

package jsonvalue

import (
	"slices"
)

// SetArray releases any payload held by v and makes it an empty array with
// room for capacity elements.
func (v *Value) SetArray(capacity int) {
	v.Free()
	v.t = TypeArray

	if capacity > 0 {
		v.a = make([]Value, 0, capacity)
	}
}

// ArraySize returns the number of elements in the array v.
func (v *Value) ArraySize() int {
	v.mustBe(TypeArray)
	return len(v.a)
}

// ArrayCapacity returns how many elements the array v can hold before growing.
func (v *Value) ArrayCapacity() int {
	v.mustBe(TypeArray)
	return cap(v.a)
}

// ArrayElement returns a pointer to element index of the array v.
//
// The pointer stays valid until the array is resized by a push, insert or
// reserve call.
func (v *Value) ArrayElement(index int) *Value {
	v.mustBe(TypeArray)
	return &v.a[index]
}

// ReserveArray grows the array storage of v to at least capacity elements.
func (v *Value) ReserveArray(capacity int) {
	v.mustBe(TypeArray)

	if capacity > cap(v.a) {
		v.a = slices.Grow(v.a, capacity-len(v.a))
	}
}

// ShrinkArray releases unused array storage.
func (v *Value) ShrinkArray() {
	v.mustBe(TypeArray)

	if cap(v.a) > len(v.a) {
		shrunk := make([]Value, len(v.a))
		copy(shrunk, v.a)
		v.a = shrunk
	}
}

// ClearArray frees every element, leaving an empty array with its capacity intact.
func (v *Value) ClearArray() {
	v.EraseArrayElements(0, v.ArraySize())
}

// PushBackArrayElement appends a null element to the array v and returns it.
func (v *Value) PushBackArrayElement() *Value {
	v.mustBe(TypeArray)

	if len(v.a) == cap(v.a) {
		v.ReserveArray(max(cap(v.a)*2, 1))
	}

	v.a = append(v.a, Value{})

	return &v.a[len(v.a)-1]
}

// PopBackArrayElement frees and removes the last element of the array v.
func (v *Value) PopBackArrayElement() {
	v.mustBe(TypeArray)

	if len(v.a) == 0 {
		panic("jsonvalue: pop from empty array")
	}

	last := len(v.a) - 1
	v.a[last].Free()
	v.a = v.a[:last]
}

// InsertArrayElement inserts a null element at index, shifting later elements
// up, and returns it. index may equal the array size.
func (v *Value) InsertArrayElement(index int) *Value {
	v.mustBe(TypeArray)

	v.a = slices.Insert(v.a, index, Value{})

	return &v.a[index]
}

// EraseArrayElements frees and removes count elements starting at index.
func (v *Value) EraseArrayElements(index, count int) {
	v.mustBe(TypeArray)

	for i := range v.a[index : index+count] {
		v.a[index+i].Free()
	}

	v.a = slices.Delete(v.a, index, index+count)
}

package jsonvalue

import (
	"bytes"
	"slices"
)

// KeyNotExist is returned by [Value.FindObjectIndex] when no member has the key.
const KeyNotExist = -1

// SetObject releases any payload held by v and makes it an empty object with
// room for capacity members.
func (v *Value) SetObject(capacity int) {
	v.Free()
	v.t = TypeObject

	if capacity > 0 {
		v.m = make([]Member, 0, capacity)
	}
}

// ObjectSize returns the number of members in the object v.
func (v *Value) ObjectSize() int {
	v.mustBe(TypeObject)
	return len(v.m)
}

// ObjectCapacity returns how many members the object v can hold before growing.
func (v *Value) ObjectCapacity() int {
	v.mustBe(TypeObject)
	return cap(v.m)
}

// ObjectKey returns the key of member index.
func (v *Value) ObjectKey(index int) string {
	v.mustBe(TypeObject)
	return string(v.m[index].key)
}

// ObjectKeyBytes returns the key of member index without copying.
// The returned slice must not be modified.
func (v *Value) ObjectKeyBytes(index int) []byte {
	v.mustBe(TypeObject)
	return v.m[index].key
}

// ObjectKeyLen returns the length in bytes of the key of member index.
func (v *Value) ObjectKeyLen(index int) int {
	v.mustBe(TypeObject)
	return len(v.m[index].key)
}

// ObjectValue returns a pointer to the value of member index.
func (v *Value) ObjectValue(index int) *Value {
	v.mustBe(TypeObject)
	return &v.m[index].val
}

// ObjectMember returns a pointer to member index.
func (v *Value) ObjectMember(index int) *Member {
	v.mustBe(TypeObject)
	return &v.m[index]
}

// FindObjectIndex returns the index of the first member whose key equals key,
// or [KeyNotExist].
func (v *Value) FindObjectIndex(key string) int {
	v.mustBe(TypeObject)

	for i := range v.m {
		if string(v.m[i].key) == key {
			return i
		}
	}

	return KeyNotExist
}

func (v *Value) findObjectIndexBytes(key []byte) int {
	for i := range v.m {
		if bytes.Equal(v.m[i].key, key) {
			return i
		}
	}

	return KeyNotExist
}

// FindObjectValue returns the value of the first member whose key equals key,
// or nil when there is none.
func (v *Value) FindObjectValue(key string) *Value {
	if i := v.FindObjectIndex(key); i != KeyNotExist {
		return &v.m[i].val
	}

	return nil
}

// ReserveObject grows the member storage of v to at least capacity members.
func (v *Value) ReserveObject(capacity int) {
	v.mustBe(TypeObject)

	if capacity > cap(v.m) {
		v.m = slices.Grow(v.m, capacity-len(v.m))
	}
}

// ShrinkObject releases unused member storage.
func (v *Value) ShrinkObject() {
	v.mustBe(TypeObject)

	if cap(v.m) > len(v.m) {
		shrunk := make([]Member, len(v.m))
		copy(shrunk, v.m)
		v.m = shrunk
	}
}

// ClearObject frees every member, leaving an empty object with its capacity intact.
func (v *Value) ClearObject() {
	v.mustBe(TypeObject)

	for i := range v.m {
		v.m[i].free()
	}

	v.m = v.m[:0]
}

// SetObjectValue returns the value of the first member with key, appending a
// new null member when the key is absent.
func (v *Value) SetObjectValue(key string) *Value {
	if i := v.FindObjectIndex(key); i != KeyNotExist {
		return &v.m[i].val
	}

	if len(v.m) == cap(v.m) {
		v.ReserveObject(max(cap(v.m)*2, 1))
	}

	k := make([]byte, len(key), len(key)+1)
	copy(k, key)
	v.m = append(v.m, Member{key: k})

	return &v.m[len(v.m)-1].val
}

// RemoveObjectValue frees and removes member index, keeping the order of the rest.
func (v *Value) RemoveObjectValue(index int) {
	v.mustBe(TypeObject)

	v.m[index].free()
	v.m = slices.Delete(v.m, index, index+1)
}

func (m *Member) free() {
	m.key = nil
	m.val.Free()
}

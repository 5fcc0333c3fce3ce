// Package types holds the data structures shared by the handlers and the
// storage backends. Keeping them in one place prevents import cycles.
package types

import (
	"math"
	"strings"
)

// Placeholder is the literal value some API clients send for string fields
// they did not fill in (it is the default example value in generated API
// docs). PatchFrom treats it the same as an absent field.
const Placeholder = "string"

// Name is a persisted name record.
//
// The json tags define the wire format; the id is assigned by storage and is
// never taken from client input.
type Name struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
	City string `json:"city"`
}

// MaxAge is the largest age accepted. Ages are stored in a 32-bit column.
const MaxAge = math.MaxInt32

// Candidate is a client-supplied record before it has been validated and
// assigned an id. It is the body of both POST and PUT requests.
//
// The validate tags apply to creation only; a PUT body becomes a Patch
// instead (see PatchFrom).
type Candidate struct {
	Name string `json:"name" validate:"notblank"`
	Age  int    `json:"age"  validate:"gt=0,max=2147483647"`
	City string `json:"city"`
}

// Record converts a validated candidate into a record without an id.
func (c Candidate) Record() Name {
	return Name{
		Name: c.Name,
		Age:  c.Age,
		City: c.City,
	}
}

// Patch names the columns an update writes. A nil field is left untouched
// in storage, so concurrent updates of different fields do not overwrite
// each other.
type Patch struct {
	Name *string
	Age  *int
	City *string
}

// PatchFrom keeps the usable fields of a PUT body:
//
//	name: when non-blank and not Placeholder
//	age: when 0 < age <= MaxAge
//	city: when non-blank and not Placeholder
func PatchFrom(c Candidate) Patch {
	var p Patch

	if supplied(c.Name) {
		p.Name = &c.Name
	}
	if c.Age > 0 && c.Age <= MaxAge {
		p.Age = &c.Age
	}
	if supplied(c.City) {
		p.City = &c.City
	}

	return p
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Name == nil && p.Age == nil && p.City == nil
}

// Apply returns n with the patch's fields written over it. The id is never
// changed.
func (p Patch) Apply(n Name) Name {
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.Age != nil {
		n.Age = *p.Age
	}
	if p.City != nil {
		n.City = *p.City
	}
	return n
}

func supplied(v string) bool {
	return strings.TrimSpace(v) != "" && v != Placeholder
}

package types

var _ Value = NewEntityValue(nil)

// EntityValue holds a nested entity.
type EntityValue struct {
	o Object
}

// NewEntityValue returns a value owning the object o.
func NewEntityValue(o Object) *EntityValue {
	return &EntityValue{o: o}
}

func (v *EntityValue) V() any {
	return v.o
}

func (v *EntityValue) Type() Type {
	return TypeEntity
}

func (v *EntityValue) String() string {
	if v.o == nil {
		return ""
	}
	return v.o.Name()
}

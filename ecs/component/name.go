package component

// Name is the optional, free-form entity name. Names are not unique.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()

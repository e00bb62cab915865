package twoiplib

// LookupKind selects an upstream resource to query: geographic data or
// network provider data.
type LookupKind string

const (
	LookupGeo      LookupKind = "geo"
	LookupProvider LookupKind = "provider"
)

func (l LookupKind) String() string {
	return string(l)
}

// Resource returns a path of the API resource which serves this kind.
func (l LookupKind) Resource() string {
	return string(l) + ".json"
}

// internal/model/policy.go
package model

// Policy is a catalog entry visible to every authenticated identity.
type Policy struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (p *Policy) Clone() *Policy {
	c := *p
	return &c
}

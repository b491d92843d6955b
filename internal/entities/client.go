package entities

import "time"

type Client struct {
	ID         string
	Name       string
	NationalID string
	Phone      string
	CreatedAt  time.Time
}

// ClientChanges holds the editable client fields. Nil means unchanged.
type ClientChanges struct {
	Name       *string
	NationalID *string
	Phone      *string
}

func (c ClientChanges) Apply(client *Client) {
	if c.Name != nil {
		client.Name = *c.Name
	}
	if c.NationalID != nil {
		client.NationalID = *c.NationalID
	}
	if c.Phone != nil {
		client.Phone = *c.Phone
	}
}

// ClientSearchLimit caps autocomplete results.
const ClientSearchLimit = 10

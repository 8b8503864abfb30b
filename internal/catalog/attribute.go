package catalog

import (
	"encoding/json"
	"errors"
	"time"
)

// Attribute is a named characteristic of a service item. Its value is a
// tagged variant: either one value shared across both languages, or a
// bilingual pair. The wire format stays the backend's flat shape.
type Attribute struct {
	ID         string
	ItemID     string
	ArName     string
	EnName     string
	Value      AttributeValue
	Order      int
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

// Persisted attributes are read-only in the UI; only deletion is offered.
func (a Attribute) Persisted() bool {
	return a.ID != ""
}

type AttributeValue interface {
	isAttributeValue()
}

type SingleValue struct {
	Value string
}

type DualValue struct {
	ArValue string
	EnValue string
}

func (SingleValue) isAttributeValue() {}
func (DualValue) isAttributeValue()   {}

var errUnsetAttributeValue = errors.New("attribute has no value variant")

// Display renders the value for the active locale.
func (a Attribute) Display(locale string) string {
	switch v := a.Value.(type) {
	case SingleValue:
		return v.Value
	case DualValue:
		return Localized(locale, v.ArValue, v.EnValue)
	default:
		return ""
	}
}

func (a Attribute) Name(locale string) string {
	return Localized(locale, a.ArName, a.EnName)
}

type attributeWire struct {
	ID          string     `json:"id,omitempty"`
	ItemID      string     `json:"itemId,omitempty"`
	ArName      string     `json:"arName"`
	EnName      string     `json:"enName"`
	SingleValue bool       `json:"singleValue"`
	Value       string     `json:"value,omitempty"`
	ArValue     string     `json:"arValue,omitempty"`
	EnValue     string     `json:"enValue,omitempty"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	ModifiedAt  *time.Time `json:"modifiedAt,omitempty"`
}

func (a Attribute) MarshalJSON() ([]byte, error) {
	wire := attributeWire{
		ID:         a.ID,
		ItemID:     a.ItemID,
		ArName:     a.ArName,
		EnName:     a.EnName,
		Order:      a.Order,
		CreatedAt:  a.CreatedAt,
		ModifiedAt: a.ModifiedAt,
	}
	switch v := a.Value.(type) {
	case SingleValue:
		wire.SingleValue = true
		wire.Value = v.Value
	case DualValue:
		wire.ArValue = v.ArValue
		wire.EnValue = v.EnValue
	default:
		return nil, errUnsetAttributeValue
	}
	return json.Marshal(wire)
}

func (a *Attribute) UnmarshalJSON(data []byte) error {
	var wire attributeWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	a.ID = wire.ID
	a.ItemID = wire.ItemID
	a.ArName = wire.ArName
	a.EnName = wire.EnName
	a.Order = wire.Order
	a.CreatedAt = wire.CreatedAt
	a.ModifiedAt = wire.ModifiedAt
	if wire.SingleValue {
		a.Value = SingleValue{Value: wire.Value}
	} else {
		a.Value = DualValue{ArValue: wire.ArValue, EnValue: wire.EnValue}
	}
	return nil
}

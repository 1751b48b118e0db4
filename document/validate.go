package document

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks that the model is fit to enter the rendering pipeline.
// Validation lives at the boundary: the layout core itself never rejects a
// document and degrades missing numeric fields to zero instead, since a
// zero-priced line is preferable to a failed export.
func (m *DocumentModel) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Number, validation.Required),
		validation.Field(&m.Currency, validation.Required, validation.By(checkCurrency)),
		validation.Field(&m.DiscountType, validation.In(DiscountPercentage, DiscountFixed)),
		validation.Field(&m.LineItems),
		validation.Field(&m.Sections),
	)
}

// Validate checks a single line item.
func (li LineItem) Validate() error {
	return validation.ValidateStruct(&li,
		validation.Field(&li.Description, validation.Required),
		// Required rejects the zero value; the threshold rule alone skips
		// zeros before comparing.
		validation.Field(&li.Quantity, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&li.UnitPrice, validation.Min(0.0)),
	)
}

// Validate checks a section and its items.
func (s Section) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Items, validation.Required),
	)
}

func checkCurrency(value interface{}) error {
	c, ok := value.(Currency)
	if !ok || !c.Valid() {
		return errors.New("unsupported currency code")
	}
	return nil
}

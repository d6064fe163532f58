// Package schema validates request payloads against the shapes of the two
// persisted entity kinds. Payload structs use pointer fields so that an
// absent field can be told apart from its zero value, which is what the
// defaulting rules need. Validation is pure: no side effects, no I/O.
package schema

import (
	"fmt"
	"strings"

	"abbey-bites/internal/model"
)

// FieldError describes a single failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError enumerates every field that failed validation, including
// nested paths such as "items[1].quantity" or "customer.phone".
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// MenuItemPayload is a candidate menu item as decoded from a request body.
type MenuItemPayload struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	IsAvailable *bool    `json:"is_available"`
}

// OrderItemPayload is a candidate order line item.
type OrderItemPayload struct {
	ItemID   *string  `json:"item_id"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// CustomerInfoPayload is candidate customer contact information.
type CustomerInfoPayload struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// OrderPayload is a candidate order as decoded from a request body.
type OrderPayload struct {
	Items         []OrderItemPayload   `json:"items"`
	Customer      *CustomerInfoPayload `json:"customer"`
	Total         *float64             `json:"total"`
	Status        *string              `json:"status"`
	PaymentMethod *string              `json:"payment_method"`
}

// ValidateMenuItem checks a candidate menu item and returns the typed value
// with defaults applied, or a *ValidationError listing every offending field.
func ValidateMenuItem(p *MenuItemPayload) (model.MenuItem, error) {
	var errs []FieldError

	if p.Name == nil {
		errs = append(errs, FieldError{Field: "name", Message: "is required"})
	}
	if p.Price == nil {
		errs = append(errs, FieldError{Field: "price", Message: "is required"})
	} else if *p.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "must be greater than or equal to 0"})
	}

	if len(errs) > 0 {
		return model.MenuItem{}, &ValidationError{Fields: errs}
	}

	item := model.MenuItem{
		Name:        *p.Name,
		Description: p.Description,
		Price:       *p.Price,
		Category:    "Main",
		Image:       p.Image,
		IsAvailable: true,
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.IsAvailable != nil {
		item.IsAvailable = *p.IsAvailable
	}

	return item, nil
}

// ValidateOrder checks a candidate order, recursively validating each line
// item and the customer info, and returns the typed value with defaults
// applied, or a *ValidationError listing every offending field path.
func ValidateOrder(p *OrderPayload) (model.Order, error) {
	var errs []FieldError

	if p.Items == nil {
		errs = append(errs, FieldError{Field: "items", Message: "is required"})
	}
	for i, it := range p.Items {
		errs = append(errs, validateOrderItem(fmt.Sprintf("items[%d]", i), &it)...)
	}

	if p.Customer == nil {
		errs = append(errs, FieldError{Field: "customer", Message: "is required"})
	} else {
		errs = append(errs, validateCustomerInfo("customer", p.Customer)...)
	}

	if p.Total == nil {
		errs = append(errs, FieldError{Field: "total", Message: "is required"})
	} else if *p.Total < 0 {
		errs = append(errs, FieldError{Field: "total", Message: "must be greater than or equal to 0"})
	}

	if len(errs) > 0 {
		return model.Order{}, &ValidationError{Fields: errs}
	}

	order := model.Order{
		Items:         make([]model.OrderItem, len(p.Items)),
		Total:         *p.Total,
		Status:        model.StatusPending,
		PaymentMethod: model.PaymentCOD,
	}
	for i, it := range p.Items {
		order.Items[i] = model.OrderItem{
			ItemID:   *it.ItemID,
			Name:     *it.Name,
			Price:    *it.Price,
			Quantity: *it.Quantity,
		}
	}
	order.Customer = model.CustomerInfo{
		Name:    *p.Customer.Name,
		Phone:   *p.Customer.Phone,
		Address: *p.Customer.Address,
		Notes:   p.Customer.Notes,
	}
	if p.Status != nil {
		order.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		order.PaymentMethod = *p.PaymentMethod
	}

	return order, nil
}

func validateOrderItem(path string, p *OrderItemPayload) []FieldError {
	var errs []FieldError

	if p.ItemID == nil {
		errs = append(errs, FieldError{Field: path + ".item_id", Message: "is required"})
	}
	if p.Name == nil {
		errs = append(errs, FieldError{Field: path + ".name", Message: "is required"})
	}
	if p.Price == nil {
		errs = append(errs, FieldError{Field: path + ".price", Message: "is required"})
	} else if *p.Price < 0 {
		errs = append(errs, FieldError{Field: path + ".price", Message: "must be greater than or equal to 0"})
	}
	if p.Quantity == nil {
		errs = append(errs, FieldError{Field: path + ".quantity", Message: "is required"})
	} else if *p.Quantity < 1 {
		errs = append(errs, FieldError{Field: path + ".quantity", Message: "must be greater than or equal to 1"})
	}

	return errs
}

func validateCustomerInfo(path string, p *CustomerInfoPayload) []FieldError {
	var errs []FieldError

	if p.Name == nil {
		errs = append(errs, FieldError{Field: path + ".name", Message: "is required"})
	}
	if p.Phone == nil {
		errs = append(errs, FieldError{Field: path + ".phone", Message: "is required"})
	}
	if p.Address == nil {
		errs = append(errs, FieldError{Field: path + ".address", Message: "is required"})
	}

	return errs
}

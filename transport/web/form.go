package web

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/schema"
	"github.com/muhammadheryan/inventory-management/model"
	validatorx "github.com/muhammadheryan/inventory-management/utils/validator"
	"github.com/shopspring/decimal"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// formDateLayouts covers <input type="date"> and <input type="datetime-local">.
var formDateLayouts = []string{"2006-01-02", "2006-01-02T15:04", "2006-01-02T15:04:05"}

func parseFormDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range formDateLayouts {
		if d, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &d, nil
		}
	}
	return nil, errors.New("ReceiptDate must be a date")
}

// decodeForm fills dst from the posted form. Conversion failures come back as
// one message per field.
func decodeForm(r *http.Request, dst interface{}) []string {
	if err := r.ParseForm(); err != nil {
		return []string{"the form could not be read"}
	}
	err := formDecoder.Decode(dst, r.PostForm)
	if err == nil {
		return nil
	}

	multi, ok := err.(schema.MultiError)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(multi))
	for key := range multi {
		msgs = append(msgs, fmt.Sprintf("%s has an invalid value", key))
	}
	sort.Strings(msgs)
	return msgs
}

// productFromForm turns the posted product form into a validated view-model.
func productFromForm(r *http.Request) (*model.ProductViewModel, []string) {
	var form model.ProductForm
	if msgs := decodeForm(r, &form); len(msgs) > 0 {
		return &model.ProductViewModel{ProductID: form.ProductID, ProductName: form.ProductName}, msgs
	}

	vm := &model.ProductViewModel{
		ProductID:   form.ProductID,
		ProductName: strings.TrimSpace(form.ProductName),
	}
	if desc := strings.TrimSpace(form.ProductDescription); desc != "" {
		vm.ProductDescription = &desc
	}

	var msgs []string
	if raw := strings.TrimSpace(form.Price); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			msgs = append(msgs, "Price must be a number")
		} else {
			vm.Price = price
		}
	}
	if len(msgs) > 0 {
		return vm, msgs
	}

	return vm, validatorx.Messages(validatorx.ValidateStruct(vm))
}

// arrivalFromForm turns the posted stock receipt form into a validated view-model.
func arrivalFromForm(r *http.Request) (*model.ArrivalViewModel, []string) {
	var form model.ArrivalForm
	if msgs := decodeForm(r, &form); len(msgs) > 0 {
		return &model.ArrivalViewModel{ReceiptID: form.ReceiptID, ProductID: form.ProductID, ProductName: form.ProductName}, msgs
	}

	vm := &model.ArrivalViewModel{
		ReceiptID:   form.ReceiptID,
		ProductID:   form.ProductID,
		ProductName: form.ProductName,
		Quantity:    form.Quantity,
	}

	date, err := parseFormDate(form.ReceiptDate)
	if err != nil {
		return vm, []string{err.Error()}
	}
	vm.ReceiptDate = date

	return vm, validatorx.Messages(validatorx.ValidateStruct(vm))
}

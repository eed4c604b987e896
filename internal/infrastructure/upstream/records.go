package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"contabilidad_orquestador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// The upstream services are loosely typed: numbers sometimes arrive as strings
// and strings as numbers. Records are decoded through these wire types and then
// converted to entities. Key matching is case-insensitive (encoding/json default).

type invoiceRecord struct {
	Code        flexInt         `json:"codigo"`
	CustomerID  flexInt         `json:"clienteCi"`
	IssueDate   flexString      `json:"fecha"`
	TotalAmount decimal.Decimal `json:"montoTotal"`
	Paid        flexBool        `json:"pagada"`
}

func (r invoiceRecord) toEntity() entities.Invoice {
	return entities.Invoice{
		Code:        int64(r.Code),
		CustomerID:  int64(r.CustomerID),
		IssueDate:   string(r.IssueDate),
		TotalAmount: r.TotalAmount,
		Paid:        bool(r.Paid),
	}
}

type paymentRecord struct {
	Code        flexInt         `json:"codigo"`
	InvoiceCode flexInt         `json:"facturaCodigo"`
	PaymentDate flexString      `json:"fechaPago"`
	AmountPaid  decimal.Decimal `json:"montoPagado"`
}

func (r paymentRecord) toEntity() entities.Payment {
	return entities.Payment{
		Code:        int64(r.Code),
		InvoiceCode: int64(r.InvoiceCode),
		PaymentDate: string(r.PaymentDate),
		AmountPaid:  r.AmountPaid,
	}
}

type customerRecord struct {
	NationalID flexString `json:"ci"`
	Name       flexString `json:"nombre"`
	Category   flexString `json:"categoria"`
}

func (r customerRecord) toEntity() entities.Customer {
	return entities.Customer{
		NationalID: string(r.NationalID),
		Name:       string(r.Name),
		Category:   string(r.Category),
	}
}

func decodeInvoice(raw json.RawMessage) (entities.Invoice, error) {
	var r invoiceRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return entities.Invoice{}, err
	}
	return r.toEntity(), nil
}

func decodePayment(raw json.RawMessage) (entities.Payment, error) {
	var r paymentRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return entities.Payment{}, err
	}
	return r.toEntity(), nil
}

func decodeCustomer(raw json.RawMessage) (entities.Customer, error) {
	var r customerRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return entities.Customer{}, err
	}
	return r.toEntity(), nil
}

var jsonNull = []byte("null")

// flexInt accepts 12, "12", 12.0 and "12.0". Fractional values are rejected.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*f = 0
		return nil
	}

	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = flexInt(n)
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not an integer: %s", data)
	}
	if !d.IsInteger() {
		return fmt.Errorf("fractional value where integer expected: %s", data)
	}
	*f = flexInt(d.IntPart())
	return nil
}

// flexString accepts a JSON string or a bare number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("not a string or number: %s", data)
	}
	*f = flexString(n.String())
	return nil
}

// flexBool accepts true/false, their string forms and 0/1.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*f = false
		return nil
	}

	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "si", "sí":
		*f = true
	case "false", "0", "no", "":
		*f = false
	default:
		return fmt.Errorf("not a boolean: %s", data)
	}
	return nil
}

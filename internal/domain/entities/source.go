package entities

// SourceKind names one of the upstream collections.
type SourceKind string

const (
	SourceInvoices  SourceKind = "facturas"
	SourcePayments  SourceKind = "pagos"
	SourceCustomers SourceKind = "clientes"
)

// SourceKinds lists the collections in the order they are reported.
var SourceKinds = []SourceKind{SourceInvoices, SourcePayments, SourceCustomers}

// SourceProbe is a raw look at one upstream collection, used for diagnostics.
type SourceProbe struct {
	Source     SourceKind
	Endpoint   string
	StatusCode int
	Content    string
	Error      string
}

// SourceSample holds the collection sizes plus the first records of each one.
type SourceSample struct {
	TotalCustomers int
	TotalInvoices  int
	TotalPayments  int
	Customers      []Customer
	Invoices       []Invoice
	Payments       []Payment
}

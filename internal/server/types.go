package server

// MultiplyResponse is the JSON body returned by /multiply.
type MultiplyResponse struct {
	// Algorithm is the multiplier that produced Product.
	Algorithm string `json:"algorithm"`
	// DigitsA and DigitsB are the operand lengths.
	DigitsA int `json:"digits_a"`
	DigitsB int `json:"digits_b"`
	// Product is the decimal product.
	Product string `json:"product"`
	// ProductDigits is len(Product).
	ProductDigits int `json:"product_digits"`
	// Duration is the formatted execution time.
	Duration string `json:"duration"`
}

// AlgorithmsResponse is the JSON body returned by /algorithms.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
	Default    string   `json:"default"`
}

// HealthResponse is the JSON body returned by /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	// Error is the HTTP status text.
	Error string `json:"error"`
	// Message describes the failure.
	Message string `json:"message,omitempty"`
}

// requestError is a query parsing failure carrying its HTTP status.
type requestError struct {
	Message    string
	StatusCode int
}

func (e requestError) Error() string { return e.Message }

package dto

import "time"

type FranchiseResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Version  int64            `json:"version"`
	Branches []BranchResponse `json:"branches"`
}

type BranchResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products"`
}

type ProductResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

type MaxStockResponse struct {
	FranchiseID   string           `json:"franchiseId"`
	FranchiseName string           `json:"franchiseName"`
	Branches      []BranchResponse `json:"branches"`
}

type ErrorResponse struct {
	TraceID   string        `json:"traceId"`
	Status    int           `json:"status"`
	Code      string        `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

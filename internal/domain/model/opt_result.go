//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"time"
)

// DefaultRGT tags result rows when a run does not specify one.
const DefaultRGT = "RGTSU"

// OptResult is one synthesized per-day delivery record of an optimization.
type OptResult struct {
	ID              int64     `json:"id"               db:"id"`
	OptimizationID  int64     `json:"optimization_id"  db:"optimization_id"`
	DeliveryDate    time.Time `json:"delivery_date"    db:"delivery_date"`
	RGT             string    `json:"rgt"              db:"rgt"`
	Shipper         string    `json:"shipper"          db:"shipper"`
	Volume          int64     `json:"volume"           db:"volume"`
	UntouchedVolume int64     `json:"untouched_volume" db:"untouched_volume"`
	VesselName      string    `json:"vessel_name"      db:"vessel_name"`
	MMBTU           int64     `json:"mmbtu"            db:"mmbtu"`
	MMSCF           int64     `json:"mmscf"            db:"mmscf"`
	CreatedAt       time.Time `json:"created_at"       db:"created_at"`
}

// CreateOptResultRequest represents a single result row insert.
type CreateOptResultRequest struct {
	OptimizationID  int64  `json:"optimization_id"`
	DeliveryDate    string `json:"delivery_date"`
	RGT             string `json:"rgt"`
	Shipper         string `json:"shipper"`
	Volume          int64  `json:"volume"`
	UntouchedVolume int64  `json:"untouched_volume"`
	VesselName      string `json:"vessel_name"`
	MMBTU           int64  `json:"mmbtu"`
	MMSCF           int64  `json:"mmscf"`
}

// Validate validates the CreateOptResultRequest fields.
func (r *CreateOptResultRequest) Validate() error {
	if r.OptimizationID <= 0 {
		return errors.New("optimization_id is required")
	}
	if _, err := ParseDate(r.DeliveryDate); err != nil {
		return errors.New("delivery_date must be a YYYY-MM-DD date")
	}
	if r.Volume < 0 || r.UntouchedVolume < 0 {
		return errors.New("volumes must be non-negative")
	}
	return nil
}

// ToResult converts the request into a row ready for insertion.
func (r *CreateOptResultRequest) ToResult() (*OptResult, error) {
	d, err := ParseDate(r.DeliveryDate)
	if err != nil {
		return nil, err
	}
	rgt := r.RGT
	if rgt == "" {
		rgt = DefaultRGT
	}
	return &OptResult{
		OptimizationID:  r.OptimizationID,
		DeliveryDate:    d,
		RGT:             rgt,
		Shipper:         r.Shipper,
		Volume:          r.Volume,
		UntouchedVolume: r.UntouchedVolume,
		VesselName:      r.VesselName,
		MMBTU:           r.MMBTU,
		MMSCF:           r.MMSCF,
	}, nil
}

// UpdateOptResultRequest carries the result fields to change. Nil fields keep their value.
type UpdateOptResultRequest struct {
	RGT             *string `json:"rgt,omitempty"`
	Shipper         *string `json:"shipper,omitempty"`
	Volume          *int64  `json:"volume,omitempty"`
	UntouchedVolume *int64  `json:"untouched_volume,omitempty"`
	VesselName      *string `json:"vessel_name,omitempty"`
	MMBTU           *int64  `json:"mmbtu,omitempty"`
	MMSCF           *int64  `json:"mmscf,omitempty"`
}

// IsEmpty reports whether the request carries no fields.
func (r *UpdateOptResultRequest) IsEmpty() bool {
	return r.RGT == nil && r.Shipper == nil && r.Volume == nil && r.UntouchedVolume == nil &&
		r.VesselName == nil && r.MMBTU == nil && r.MMSCF == nil
}

// BulkInsertResult reports how many rows a bulk insert wrote.
type BulkInsertResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Inserted int64  `json:"inserted"`
}

// CompleteRunParams groups the terminal write of a generation run: the synthesized rows and the
// final progress update, applied in one transaction.
type CompleteRunParams struct {
	Rows     []*OptResult
	Progress ProgressUpdate
}

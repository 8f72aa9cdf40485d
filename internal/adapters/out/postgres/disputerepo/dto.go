package disputerepo

import (
	"encoding/json"
	"time"

	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DisputeDTO maps the dispute aggregate to the disputes table. Response and
// resolution are stored as jsonb documents since they are written once and
// read back whole.
type DisputeDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	RaisedByID          uuid.UUID `gorm:"type:uuid"`
	DisputeType         string    `gorm:"type:varchar(64)"`
	Description         string    `gorm:"type:text"`
	Evidence            *string   `gorm:"type:jsonb"`
	RequestedResolution string    `gorm:"type:text"`
	Severity            string    `gorm:"type:varchar(16)"`
	Status              int       `gorm:"index"`
	RaisedAt            time.Time
	Response            *string `gorm:"type:jsonb"`
	Resolution          *string `gorm:"type:jsonb"`
	Version             int64
}

// TableName overrides the table name.
func (DisputeDTO) TableName() string {
	return "disputes"
}

func fromDomain(aggregate *dispute.Dispute) (DisputeDTO, error) {
	dto := DisputeDTO{
		ID:                  aggregate.ID().Bytes(),
		OrderID:             aggregate.OrderID().Bytes(),
		RaisedByID:          aggregate.RaisedByID().Bytes(),
		DisputeType:         aggregate.Type(),
		Description:         aggregate.Description(),
		RequestedResolution: aggregate.RequestedResolution(),
		Severity:            string(aggregate.Severity()),
		Status:              int(aggregate.Status()),
		RaisedAt:            aggregate.RaisedAt(),
		Version:             aggregate.Version(),
	}

	if evidence := aggregate.Evidence(); len(evidence) > 0 {
		raw, err := json.Marshal(evidence)
		if err != nil {
			return DisputeDTO{}, err
		}
		encoded := string(raw)
		dto.Evidence = &encoded
	}

	if response := aggregate.Response(); response != nil {
		raw, err := json.Marshal(response)
		if err != nil {
			return DisputeDTO{}, err
		}
		encoded := string(raw)
		dto.Response = &encoded
	}

	if resolution := aggregate.Resolution(); resolution != nil {
		raw, err := json.Marshal(resolution)
		if err != nil {
			return DisputeDTO{}, err
		}
		encoded := string(raw)
		dto.Resolution = &encoded
	}

	return dto, nil
}

func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	raisedByID, err := kernel.UUIDFromBytes(dto.RaisedByID[:])
	if err != nil {
		return nil, err
	}

	var evidence []string
	if dto.Evidence != nil {
		if err = json.Unmarshal([]byte(*dto.Evidence), &evidence); err != nil {
			return nil, err
		}
	}

	var response *dispute.Response
	if dto.Response != nil {
		response = &dispute.Response{}
		if err = json.Unmarshal([]byte(*dto.Response), response); err != nil {
			return nil, err
		}
	}

	var resolution *dispute.Resolution
	if dto.Resolution != nil {
		resolution = &dispute.Resolution{}
		if err = json.Unmarshal([]byte(*dto.Resolution), resolution); err != nil {
			return nil, err
		}
	}

	return dispute.RestoreDispute(dispute.RestoreDisputeParams{
		ID:                  id,
		OrderID:             orderID,
		RaisedByID:          raisedByID,
		Type:                dto.DisputeType,
		Description:         dto.Description,
		Evidence:            evidence,
		RequestedResolution: dto.RequestedResolution,
		Severity:            dispute.Severity(dto.Severity),
		Status:              dispute.Status(dto.Status),
		RaisedAt:            dto.RaisedAt,
		Response:            response,
		Resolution:          resolution,
		Version:             dto.Version,
	})
}

package queries

import (
	"context"
	"time"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOpenOrdersQueryHandler reads the open order listing straight from the
// database. The listing skips the aggregate: it needs headline fields and a
// summed total, not the full document.
type ListOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOpenOrdersQueryHandler creates a handler for the public listing.
// Requires a GORM database connection for query execution.
func NewListOpenOrdersQueryHandler(db *gorm.DB) ListOpenOrdersQueryHandler {
	return ListOpenOrdersQueryHandler{db: db}
}

// Handle returns Confirmed orders with no assigned supplier, oldest number
// first. The total is summed over the order lines in the database.
func (h ListOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOpenOrdersQuery,
) ([]ListOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listing := make([]ListOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.order_type,
			o.title,
			o.buyer_org_id,
			o.delivery_date,
			o.delivery_address,
			COALESCE(SUM(i.quantity * i.unit_price_cents), 0) AS total_cents
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ? AND o.supplier_org_id IS NULL
		GROUP BY o.id
		ORDER BY o.number
	`, order.Confirmed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOpenOrdersQueryResponse
		var id, buyerOrgID uuid.UUID
		var orderType string
		var deliveryDate time.Time
		var totalCents int64

		err = rows.Scan(
			&id,
			&resp.Number,
			&orderType,
			&resp.Title,
			&buyerOrgID,
			&deliveryDate,
			&resp.DeliveryAddress,
			&totalCents,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		buyer, idErr := kernel.UUIDFromBytes(buyerOrgID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.BuyerOrgID = buyer

		parsedType, typeErr := order.TypeFromString(orderType)
		if typeErr != nil {
			return nil, typeErr
		}
		resp.Type = parsedType

		total, moneyErr := kernel.NewMoney(totalCents)
		if moneyErr != nil {
			return nil, moneyErr
		}
		resp.TotalPrice = total
		resp.DeliveryDate = deliveryDate

		listing = append(listing, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listing, nil
}

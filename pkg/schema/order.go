package schema

import "errors"

type (
	OrderItemV1 struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Price Number `json:"price"`
		Qty   Number `json:"qty"`
	}

	CouponSnapshotV1 struct {
		Code  string `json:"code"`
		Type  string `json:"type"`
		Value Number `json:"value"`
	}

	OrderV1 struct {
		ID            string            `json:"id"`
		CustomerName  string            `json:"customerName"`
		CustomerEmail string            `json:"customerEmail,omitempty"`
		CustomerPhone string            `json:"customerPhone,omitempty"`
		Address       string            `json:"address,omitempty"`
		Items         []OrderItemV1     `json:"items"`
		Subtotal      Number            `json:"subtotal"`
		Discount      Number            `json:"discount"`
		Shipping      Number            `json:"shipping"`
		Total         Number            `json:"total"`
		Payment       string            `json:"payment"`
		Status        string            `json:"status"`
		Coupon        *CouponSnapshotV1 `json:"coupon,omitempty"`
		CreatedAt     Millis            `json:"createdAt"`
		UpdatedAt     Millis            `json:"updatedAt"`

		legacyOrderIDs
	}
)

var orderStatuses = map[string]struct{}{
	"PENDING": {}, "PROCESSING": {}, "PAID": {},
	"SHIPPED": {}, "DELIVERED": {}, "CANCELLED": {},
}

func (o OrderV1) Validate() error {
	if o.CanonicalID() == "" {
		return errors.New("order: missing id")
	}
	if _, ok := orderStatuses[o.Status]; !ok {
		return errors.New("order: unknown status")
	}
	for _, it := range o.Items {
		if it.ID == "" || it.Qty <= 0 {
			return errors.New("order: malformed line item")
		}
	}
	return nil
}

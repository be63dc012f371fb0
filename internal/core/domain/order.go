package domain

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderPaid       OrderStatus = "PAID"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderPaid,
		OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PayCashOnDelivery PaymentMethod = "COD"
	PayOnline         PaymentMethod = "ONLINE"
)

// InitialStatus is the order status implied by the payment method:
// online payments are already in flight, cash waits for confirmation.
func (m PaymentMethod) InitialStatus() OrderStatus {
	if m == PayOnline {
		return OrderProcessing
	}
	return OrderPending
}

type ShippingZone string

const (
	ZoneLocal  ShippingZone = "LOCAL"
	ZoneRemote ShippingZone = "REMOTE"
)

type (
	// OrderItem is a snapshot of a cart line at commit time,
	// a copy rather than a reference to the live product.
	OrderItem struct {
		ProductID string
		Name      string
		Price     float64
		Qty       int
	}

	Order struct {
		OrderID       string
		CustomerName  string
		CustomerEmail string
		CustomerPhone string
		Address       string
		Items         []OrderItem
		Subtotal      float64
		Discount      float64
		Shipping      float64
		Total         float64
		Payment       PaymentMethod
		Status        OrderStatus
		Coupon        *CouponSnapshot
		CreatedAt     time.Time
		UpdatedAt     time.Time
	}
)

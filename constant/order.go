package constant

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusProcess   OrderStatus = "PROCESS"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:   {},
	OrderStatusProcess:   {},
	OrderStatusShipped:   {},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// IsValidOrderStatus reports whether s is a member of the status set.
// The admin update path checks membership only; the linear
// PENDING -> PROCESS -> SHIPPED -> DELIVERED flow is not enforced there.
func IsValidOrderStatus(s OrderStatus) bool {
	_, ok := validOrderStatuses[s]
	return ok
}

type OrderType string

const (
	OrderTypeCatalog OrderType = "CATALOG"
	OrderTypeCustom  OrderType = "CUSTOM"
)

func IsValidOrderType(t OrderType) bool {
	return t == OrderTypeCatalog || t == OrderTypeCustom
}

// OrderIDPrefix starts every generated order identifier.
const OrderIDPrefix = "DR-"

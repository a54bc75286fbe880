package mq

// Exchange Names
const (
	ExchangeMailEvents  = "mail_events"
	ExchangeOrderEvents = "order_events"
	ExchangeLog         = "app_logs"
)

// Exchange Types
const (
	ExchangeTypeTopic  = "topic"
	ExchangeTypeFanout = "fanout"
)

// Queue Names
const (
	QueueMail  = "mail_queue"
	QueueLog   = "log_queue"
	QueueStock = "stock_queue"
)

// Routing Keys
const (
	RoutingKeyMailGiftCard     = "mail.giftcard"
	RoutingKeyMailOrderPaid    = "mail.order.paid"
	RoutingKeyMailOrderShipped = "mail.order.shipped"
	RoutingKeyMailAll          = "mail.#"
	RoutingKeyOrderPaid        = "order.paid"
)

package events

// Topic constants for lifecycle events emitted by the service.
const (
	TopicOrderQuoted     = "order.quoted"
	TopicOrderPriced     = "order.priced"
	TopicMenuItemCreated = "menu.item.created"
	TopicMenuItemUpdated = "menu.item.updated"
	TopicMenuItemDeleted = "menu.item.deleted"
)

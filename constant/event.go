package constant

type ReceiptAction string

const (
	ReceiptCreated ReceiptAction = "receipt.created"
	ReceiptUpdated ReceiptAction = "receipt.updated"
	ReceiptDeleted ReceiptAction = "receipt.deleted"
)

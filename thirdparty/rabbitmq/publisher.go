package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/inventory-management/constant"
	"github.com/rabbitmq/amqp091-go"
)

const receiptExchange = "stock_receipt_exchange"

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// ReceiptEvent is published whenever a stock receipt is created, updated or deleted.
type ReceiptEvent struct {
	Action      constant.ReceiptAction `json:"action"`
	ReceiptID   int64                  `json:"receipt_id"`
	ProductID   int64                  `json:"product_id"`
	Quantity    int                    `json:"quantity"`
	ReceiptDate time.Time              `json:"receipt_date"`
	OccurredAt  time.Time              `json:"occurred_at"`
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		receiptExchange, // name
		"topic",         // type
		true,            // durable
		false,           // auto-delete
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

// PublishReceiptEvent routes the event by its action, e.g. "receipt.created".
func (p *Publisher) PublishReceiptEvent(ctx context.Context, msg ReceiptEvent) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		receiptExchange,    // exchange
		string(msg.Action), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartSeatingConsumer connects to RabbitMQ, declares the durable
// table.seating queue, and consumes seating events, appending each one
// as a single human-readable line to logs/seating.log.  It runs a
// reconnect loop with exponential backoff and keeps the server running
// through broker outages; processing errors are logged and the message
// rejected without requeue.
func StartSeatingConsumer() error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Printf("seating-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("seating-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("seating-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(seatingQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(seatingQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for msg := range msgs {
		if err := recordSeatingEvent(msg.Body); err != nil {
			log.Printf("seating-consumer: record failed: %v", err)
			_ = msg.Nack(false, false)
			continue
		}
		_ = msg.Ack(false)
	}
	return fmt.Errorf("delivery channel closed")
}

// recordSeatingEvent appends one line per event to logs/seating.log,
// creating the directory on first use.
func recordSeatingEvent(body []byte) error {
	var ev SeatingEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "seating.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = f.Close() }()

	line := fmt.Sprintf("%s action=%s table=%d(%s) reservation=%d guest=%q party=%d\n",
		ev.OccurredAt, ev.Action, ev.TableID, ev.TableName, ev.ReservationID, ev.GuestName, ev.PartySize)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}

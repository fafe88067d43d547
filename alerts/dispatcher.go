package alerts

import (
	"fmt"
	"log"
	"sync"

	"go-wastewatch/types"
)

// Sender delivers one alert over a single channel (SMS, email, push, radio).
// Implementations own the transport; the dispatcher only fans out.
type Sender interface {
	Send(alert types.Alert) error
}

// Dispatcher routes alerts to the Sender registered for their channel.
// A failed send never stops the rest of the batch.
type Dispatcher struct {
	senders map[string]Sender
}

func NewDispatcher(senders map[string]Sender) *Dispatcher {
	return &Dispatcher{senders: senders}
}

type sendResult struct {
	alert types.Alert
	err   error
}

// Dispatch attempts every alert and returns the delivered count plus the
// alerts that could not be sent.
func (d *Dispatcher) Dispatch(batch []types.Alert) (int, []types.Alert) {
	resultsChan := make(chan sendResult, len(batch))
	var wg sync.WaitGroup

	for _, alert := range batch {
		wg.Add(1)
		a := alert
		go func() {
			defer wg.Done()
			sender, ok := d.senders[a.Channel]
			if !ok {
				resultsChan <- sendResult{a, fmt.Errorf("no sender registered for channel %s", a.Channel)}
				return
			}
			if err := sender.Send(a); err != nil {
				resultsChan <- sendResult{a, fmt.Errorf("sending %s alert to %s %s: %w", a.Channel, a.Country, a.RecipientType, err)}
				return
			}
			resultsChan <- sendResult{alert: a}
		}()
	}

	wg.Wait()
	close(resultsChan)

	sent := 0
	var failed []types.Alert
	for result := range resultsChan {
		if result.err != nil {
			log.Printf("Alert delivery failed: %v", result.err)
			failed = append(failed, result.alert)
			continue
		}
		sent++
	}
	return sent, failed
}

// LogSender writes the alert to the process log. Stands in for real
// transport adapters in development and tests.
type LogSender struct {
	Channel string
}

func (s LogSender) Send(alert types.Alert) error {
	log.Printf("%s Alert: %s", s.Channel, alert.Message)
	return nil
}

// DefaultSenders registers a LogSender for every channel the templates use.
func DefaultSenders() map[string]Sender {
	return map[string]Sender{
		"SMS":   LogSender{Channel: "SMS"},
		"EMAIL": LogSender{Channel: "Email"},
		"PUSH":  LogSender{Channel: "Push"},
		"RADIO": LogSender{Channel: "Radio"},
	}
}

// Package events defines the concrete event types the engine publishes.
//
// Every type embeds event.Base and is identified by the Type* tag
// constants. Subscribers receive the event.Event interface and recover
// the payload with a type assertion keyed by the tag:
//
//	dispatcher.Subscribe(events.TypeItemAcquired, func(ev event.Event) error {
//		item, ok := ev.(*events.ItemAcquired)
//		if !ok {
//			return nil
//		}
//		playPickupSound(item.ItemID)
//		return nil
//	})
package events

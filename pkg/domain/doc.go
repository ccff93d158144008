/*
Package domain contains the core domain models for the OrderBot.

It defines the entities the dialog machinery operates on, kept free of I/O and
persistence concerns following Hexagonal Architecture principles.

# Key Entities

  - Product: An immutable catalog entry.
  - Order: The mutable cart for one conversation (items, running total, lifecycle flags).
  - ConversationState: The durable per-conversation unit (dialog stack + order).
  - Frame: One activation record on the dialog stack.
  - Activity / Reply: The inbound event and outbound message shapes for a turn.
  - Recognition: The result of intent classification.
*/
package domain

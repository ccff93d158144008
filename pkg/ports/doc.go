/*
Package ports defines the driven ports (interfaces) for the OrderBot.

These interfaces decouple the turn router and dialogs from external
implementations, allowing the bot to work with various storage backends,
catalogs and intent classifiers.

# Key Interfaces

  - StateStore: Responsible for persisting and loading conversation state.
  - Catalog: Responsible for product listing and lookup.
  - Recognizer: Responsible for intent classification of user utterances.
  - Responder: Responsible for delivering replies during a turn.
*/
package ports

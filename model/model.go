// Package model is the catalog of entity schemas for the Luma API. The core
// codec is schema-agnostic; these are the concrete schemas the client feeds
// into it.
package model

import (
	wirecast "github.com/lumachat/wirecast"
	"github.com/lumachat/wirecast/codec"
)

// User is a platform account as it appears in payloads.
var User = wirecast.NewSchema("user",
	wirecast.F("id", wirecast.ConvertibleOf(codec.Snowflake())),
	wirecast.F("username", wirecast.Primitive()),
	wirecast.F("discriminator", wirecast.Primitive()),
	wirecast.F("avatar", wirecast.Primitive()),
	wirecast.F("bot", wirecast.Primitive()),
)

// Channel is a text or voice channel.
var Channel = wirecast.NewSchema("channel",
	wirecast.F("id", wirecast.ConvertibleOf(codec.Snowflake())),
	wirecast.F("name", wirecast.Primitive()),
	wirecast.F("topic", wirecast.Primitive()),
	wirecast.F("nsfw", wirecast.Primitive()),
	wirecast.F("last_message_id", wirecast.ConvertibleOf(codec.Snowflake())),
)

// Message is a message posted to a channel, including its author and any
// mentioned users.
var Message = wirecast.NewSchema("message",
	wirecast.F("id", wirecast.ConvertibleOf(codec.Snowflake())),
	wirecast.F("channel_id", wirecast.ConvertibleOf(codec.Snowflake())),
	wirecast.F("content", wirecast.Primitive()),
	wirecast.F("timestamp", wirecast.ConvertibleOf(codec.Timestamp())),
	wirecast.F("edited_timestamp", wirecast.ConvertibleOf(codec.Timestamp())),
	wirecast.F("pinned", wirecast.Primitive()),
	wirecast.F("author", wirecast.EntityOf(User)),
	wirecast.F("mentions", wirecast.ListOf(wirecast.EntityOf(User))),
)

// schemas indexes the catalog by entity name for lookup by the CLI and other
// name-driven callers.
var schemas = map[string]*wirecast.Schema{
	User.Name():    User,
	Channel.Name(): Channel,
	Message.Name(): Message,
}

// Lookup returns the schema registered under name.
func Lookup(name string) (*wirecast.Schema, error) {
	s, ok := schemas[name]
	return wirecast.Require(s, ok, name, "schema catalog")
}

// Names returns the registered schema names.
func Names() []string {
	out := make([]string, 0, len(schemas))
	for name := range schemas {
		out = append(out, name)
	}
	return out
}

func init() {
	// Keys the API is known to send but no schema consumes yet. Listed here
	// so payloads carrying them do not trip the unrecognized-key diagnostic.
	wirecast.Allow(
		"flags",
		"locale",
		"nonce",
		"premium_since",
		"session_id",
	)
}

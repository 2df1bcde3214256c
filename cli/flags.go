package main

const (
	flagAutoDelete    = "auto-delete"
	flagDurable       = "durable"
	flagExchange      = "exchange"
	flagFile          = "file"
	flagIfUnused      = "if-unused"
	flagInsecure      = "insecure"
	flagOutput        = "output"
	flagPassword      = "password"
	flagPropertiesKey = "properties-key"
	flagQueue         = "queue"
	flagRoutingKey    = "routing-key"
	flagTags          = "tags"
	flagType          = "type"
	flagVhost         = "vhost"
)

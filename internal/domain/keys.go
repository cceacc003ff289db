package domain

// KeyPrefix namespaces every key the service writes to the shared KV store.
const KeyPrefix = "storefront:"

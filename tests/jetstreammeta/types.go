package jetstreammeta

// This package defines a reduced, self-contained model of the
// JetStream meta snapshot structures used by
// github.com/nats-io/nats-server/v2 in jetstream_cluster.go.
//
// It is intentionally trimmed down to only the fields that
// participate in snapshot marshalling so that we can benchmark
// CBOR encoding/decoding of a realistic, highly nested object
// graph without depending on the NATS server codebase itself.
// Timestamps are carried as Unix nanosecond counts rather than
// time.Time, and the nested config blobs are raw CBOR payloads
// rather than json.RawMessage, since floats/time and arbitrary
// JSON values are outside what this codec round-trips.

import (
	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// StorageType determines how messages are stored for retention.
// These values mirror the identifiers used by NATS.
type StorageType int

const (
	// FileStorage stores data on disk.
	FileStorage = StorageType(22)
	// MemoryStorage stores data in memory only.
	MemoryStorage = StorageType(33)
)

// MarshalCBOR encodes the storage type as a small integer code so that
// callers can delegate to this helper instead of inlining the encoding
// logic in multiple places.
func (st StorageType) MarshalCBOR(enc *cbor.Encoder) error {
	return enc.WriteInt64(int64(st))
}

// UnmarshalCBOR decodes a storage type integer code.
func (st *StorageType) UnmarshalCBOR(dec *cbor.Decoder) error {
	v, err := dec.ReadInt64()
	if err != nil {
		return err
	}
	*st = StorageType(v)
	return nil
}

// ClientInfo is a reduced copy of the NATS ClientInfo struct with
// only the CBOR-visible fields retained. The Tags field is simplified
// to []string to avoid pulling in external dependencies.
type ClientInfo struct {
	Host       string   `cbor:"host"`
	ID         uint64   `cbor:"id"`
	Account    string   `cbor:"acc"`
	Service    string   `cbor:"svc"`
	User       string   `cbor:"user"`
	Name       string   `cbor:"name"`
	Lang       string   `cbor:"lang"`
	Version    string   `cbor:"ver"`
	RTTNanos   int64    `cbor:"rtt"`
	Server     string   `cbor:"server"`
	Cluster    string   `cbor:"cluster"`
	Alternates []string `cbor:"alts"`
	Jwt        string   `cbor:"jwt"`
	IssuerKey  string   `cbor:"issuer_key"`
	NameTag    string   `cbor:"name_tag"`
	Tags       []string `cbor:"tags"`
	Kind       string   `cbor:"kind"`
	ClientType string   `cbor:"client_type"`
	MQTTClient string   `cbor:"client_id"`
	Nonce      string   `cbor:"nonce"`
}

// ForAssignmentSnap returns the minimal ClientInfo view that NATS uses
// when capturing assignment snapshots. Kept here so the benchmark
// fixture can mirror the server's behaviour.
func (ci *ClientInfo) ForAssignmentSnap() *ClientInfo {
	if ci == nil {
		return nil
	}
	return &ClientInfo{
		Account: ci.Account,
		Service: ci.Service,
		Cluster: ci.Cluster,
	}
}

// RaftGroup models the placement information for streams and
// consumers in the JetStream meta-layer.
type RaftGroup struct {
	Name      string      `cbor:"name"`
	Peers     []string    `cbor:"peers"`
	Storage   StorageType `cbor:"store"`
	Cluster   string      `cbor:"cluster"`
	Preferred string      `cbor:"preferred"`
	ScaleUp   bool        `cbor:"scale_up"`
}

// SequencePair tracks both stream and consumer sequence numbers for a
// given message, mirroring NATS' SequencePair.
type SequencePair struct {
	Consumer uint64 `cbor:"consumer_seq"`
	Stream   uint64 `cbor:"stream_seq"`
}

// Pending represents a pending message for explicit/ack-all consumers.
type Pending struct {
	Sequence  uint64 `cbor:"sequence"`
	Timestamp int64  `cbor:"ts"`
}

// ConsumerState mirrors the NATS ConsumerState type sufficiently to
// exercise a realistic nested map workload when encoding. The pending
// and redelivered maps are keyed by sequence number, so they are
// hand-encoded rather than routed through the string-keyed map
// support the generator builds for tagged struct fields.
type ConsumerState struct {
	Delivered   SequencePair
	AckFloor    SequencePair
	Pending     map[uint64]*Pending
	Redelivered map[uint64]uint64
}

// consumerAssignment mirrors just the subset of NATS' consumer
// assignment struct that participates in meta snapshots.
type consumerAssignment struct {
	Client         *ClientInfo
	CreatedUnixNano int64
	Name           string
	Stream         string
	ConfigPayload  []byte
	Group          *RaftGroup
	State          *ConsumerState
	// Internal, not marshalled.
	pending bool
}

// streamAssignment mirrors the NATS streamAssignment type, limited to
// the fields that flow into writeable snapshots.
type streamAssignment struct {
	Client          *ClientInfo
	CreatedUnixNano int64
	ConfigPayload   []byte
	Group           *RaftGroup
	Sync            string
	// Internal, not marshalled.
	consumers map[string]*consumerAssignment
}

// WriteableConsumerAssignment is the on-the-wire consumer snapshot
// representation used by the JetStream meta snapshot.
type WriteableConsumerAssignment struct {
	Client          *ClientInfo
	CreatedUnixNano int64
	Name            string
	Stream          string
	ConfigPayload   []byte
	Group           *RaftGroup
	State           *ConsumerState
}

// WriteableStreamAssignment is the on-the-wire stream snapshot
// representation used by the JetStream meta snapshot.
type WriteableStreamAssignment struct {
	Client          *ClientInfo
	CreatedUnixNano int64
	ConfigPayload   []byte
	Group           *RaftGroup
	Sync            string
	Consumers       []*WriteableConsumerAssignment
}

// MetaSnapshot holds the full set of writeable stream assignments.
type MetaSnapshot struct {
	Streams []WriteableStreamAssignment
}

// StreamConfigSnapshot and ConsumerConfigSnapshot are minimal
// configuration shapes used to generate realistic payloads that are
// stored inside ConfigPayload fields.
type StreamConfigSnapshot struct {
	Name     string            `cbor:"name"`
	Subjects []string          `cbor:"subjects"`
	Storage  StorageType       `cbor:"storage"`
	Metadata map[string]string `cbor:"metadata"`
}

type ConsumerConfigSnapshot struct {
	Durable       string            `cbor:"durable"`
	MemoryStorage bool              `cbor:"mem_storage"`
	Metadata      map[string]string `cbor:"metadata"`
}

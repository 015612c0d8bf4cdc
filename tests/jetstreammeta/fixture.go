package jetstreammeta

import (
	"fmt"

	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// Default fixture sizes chosen to mirror the NATS
// BenchmarkJetStreamMetaSnapshot benchmark: 200 streams with
// 500 consumers each.
const (
	DefaultNumStreams   = 200
	DefaultNumConsumers = 500
)

// encodeToBytes serializes v into a freshly allocated byte slice using a
// pooled buffer, returning a copy safe to keep after the buffer is
// returned to the pool.
func encodeToBytes(v cbor.Marshaler) []byte {
	bb := cbor.GetByteBuffer()
	defer cbor.PutByteBuffer(bb)
	if _, err := cbor.SerializeExtending(v, bb); err != nil {
		panic(err)
	}
	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out
}

// BuildMetaSnapshotFixture constructs a MetaSnapshot value that closely
// resembles the structure and scale of the JetStream meta snapshot
// used in the NATS server benchmarks.
func BuildMetaSnapshotFixture(numStreams, numConsumers int) MetaSnapshot {
	if numStreams <= 0 {
		numStreams = DefaultNumStreams
	}
	if numConsumers <= 0 {
		numConsumers = DefaultNumConsumers
	}

	// Single logical account/cluster for the whole fixture.
	client := &ClientInfo{
		Account: "G",
		Service: "JS",
		Cluster: "R3S",
		Name:    "bench-meta",
	}

	rg := &RaftGroup{
		Name:    "rg-meta",
		Peers:   []string{"n1", "n2", "n3"},
		Storage: MemoryStorage,
		Cluster: "R3S",
	}

	metadata := map[string]string{
		"required_api": "0",
	}

	const baseUnixNano = int64(1704067200000000000) // 2024-01-01T00:00:00Z

	streamsByName := make(map[string]*streamAssignment, numStreams)

	for i := 0; i < numStreams; i++ {
		streamName := fmt.Sprintf("STREAM-%d", i)
		subject := fmt.Sprintf("SUBJECT-%d", i)

		cfg := StreamConfigSnapshot{
			Name:     streamName,
			Subjects: []string{subject},
			Storage:  MemoryStorage,
			Metadata: metadata,
		}

		sa := &streamAssignment{
			Client:          client,
			CreatedUnixNano: baseUnixNano + int64(i)*int64(1e6),
			ConfigPayload:   encodeToBytes(&cfg),
			Group:           rg,
			Sync:            "_INBOX.meta.sync",
			consumers:       make(map[string]*consumerAssignment, numConsumers),
		}

		for j := 0; j < numConsumers; j++ {
			consumerName := fmt.Sprintf("CONSUMER-%d", j)
			ccfg := ConsumerConfigSnapshot{
				Durable:       consumerName,
				MemoryStorage: true,
				Metadata:      metadata,
			}

			state := &ConsumerState{
				Delivered: SequencePair{
					Consumer: uint64(j + 1),
					Stream:   uint64(j + 1),
				},
				AckFloor: SequencePair{
					Consumer: uint64(j),
					Stream:   uint64(j),
				},
				Pending: map[uint64]*Pending{
					1: {
						Sequence:  uint64(j + 1),
						Timestamp: baseUnixNano + int64(i*j)*int64(1e6),
					},
				},
				Redelivered: map[uint64]uint64{
					1: 2,
				},
			}

			ca := &consumerAssignment{
				Client:          client,
				CreatedUnixNano: sa.CreatedUnixNano,
				Name:            consumerName,
				Stream:          streamName,
				ConfigPayload:   encodeToBytes(&ccfg),
				Group:           rg,
				State:           state,
			}

			sa.consumers[consumerName] = ca
		}

		streamsByName[streamName] = sa
	}

	// Mirror js.metaSnapshot: transform streamAssignment and
	// consumerAssignment into their writeable forms.
	streams := make([]WriteableStreamAssignment, 0, len(streamsByName))
	for _, sa := range streamsByName {
		wsa := WriteableStreamAssignment{
			Client:          sa.Client.ForAssignmentSnap(),
			CreatedUnixNano: sa.CreatedUnixNano,
			ConfigPayload:   sa.ConfigPayload,
			Group:           sa.Group,
			Sync:            sa.Sync,
			Consumers:       make([]*WriteableConsumerAssignment, 0, len(sa.consumers)),
		}
		for _, ca := range sa.consumers {
			if ca.pending {
				continue
			}
			wca := WriteableConsumerAssignment{
				Client:          ca.Client.ForAssignmentSnap(),
				CreatedUnixNano: ca.CreatedUnixNano,
				Name:            ca.Name,
				Stream:          ca.Stream,
				ConfigPayload:   ca.ConfigPayload,
				Group:           ca.Group,
				State:           ca.State,
			}
			wsa.Consumers = append(wsa.Consumers, &wca)
		}
		streams = append(streams, wsa)
	}

	return MetaSnapshot{Streams: streams}
}

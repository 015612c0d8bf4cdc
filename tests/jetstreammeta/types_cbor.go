package jetstreammeta

import (
	cbor "github.com/fenwick-io/cbor-go/runtime"
)

// The MarshalCBOR/UnmarshalCBOR methods below are hand-written in the
// shape cborgen's code generator (cborgen/core) would produce: a CBOR
// map keyed by field name, one pair per exported field, unknown keys
// skipped on decode. ConsumerState's sequence-keyed maps fall outside
// what the generator covers, so they are written directly against the
// Encoder/Decoder instead. The unexported assignment types have no
// CBOR methods; only their writeable forms are encoded.

func writeOptionalClient(enc *cbor.Encoder, ci *ClientInfo) error {
	if ci == nil {
		return enc.WriteNone()
	}
	return ci.MarshalCBOR(enc)
}

func readOptionalClient(dec *cbor.Decoder) (*ClientInfo, error) {
	present, err := dec.ReadOptionPresent()
	if err != nil || !present {
		return nil, err
	}
	ci := new(ClientInfo)
	if err := ci.UnmarshalCBOR(dec); err != nil {
		return nil, err
	}
	return ci, nil
}

func writeOptionalGroup(enc *cbor.Encoder, g *RaftGroup) error {
	if g == nil {
		return enc.WriteNone()
	}
	return g.MarshalCBOR(enc)
}

func readOptionalGroup(dec *cbor.Decoder) (*RaftGroup, error) {
	present, err := dec.ReadOptionPresent()
	if err != nil || !present {
		return nil, err
	}
	g := new(RaftGroup)
	if err := g.UnmarshalCBOR(dec); err != nil {
		return nil, err
	}
	return g, nil
}

func (x *ClientInfo) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(20); err != nil {
		return err
	}
	fields := []struct {
		key string
		val string
	}{
		{"host", x.Host}, {"acc", x.Account}, {"svc", x.Service},
		{"user", x.User}, {"name", x.Name}, {"lang", x.Lang},
		{"ver", x.Version}, {"server", x.Server}, {"cluster", x.Cluster},
		{"jwt", x.Jwt}, {"issuer_key", x.IssuerKey}, {"name_tag", x.NameTag},
		{"kind", x.Kind}, {"client_type", x.ClientType},
		{"client_id", x.MQTTClient}, {"nonce", x.Nonce},
	}
	for _, f := range fields {
		if err := enc.WriteText(f.key); err != nil {
			return err
		}
		if err := enc.WriteText(f.val); err != nil {
			return err
		}
	}
	if err := enc.WriteText("id"); err != nil {
		return err
	}
	if err := enc.WriteUint64(x.ID); err != nil {
		return err
	}
	if err := enc.WriteText("rtt"); err != nil {
		return err
	}
	if err := enc.WriteInt64(x.RTTNanos); err != nil {
		return err
	}
	if err := enc.WriteText("alts"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(uint32(len(x.Alternates))); err != nil {
		return err
	}
	for _, s := range x.Alternates {
		if err := enc.WriteText(s); err != nil {
			return err
		}
	}
	if err := enc.WriteText("tags"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(uint32(len(x.Tags))); err != nil {
		return err
	}
	for _, s := range x.Tags {
		if err := enc.WriteText(s); err != nil {
			return err
		}
	}
	return nil
}

func (x *ClientInfo) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "host":
			x.Host, err = dec.ReadText()
		case "acc":
			x.Account, err = dec.ReadText()
		case "svc":
			x.Service, err = dec.ReadText()
		case "user":
			x.User, err = dec.ReadText()
		case "name":
			x.Name, err = dec.ReadText()
		case "lang":
			x.Lang, err = dec.ReadText()
		case "ver":
			x.Version, err = dec.ReadText()
		case "server":
			x.Server, err = dec.ReadText()
		case "cluster":
			x.Cluster, err = dec.ReadText()
		case "jwt":
			x.Jwt, err = dec.ReadText()
		case "issuer_key":
			x.IssuerKey, err = dec.ReadText()
		case "name_tag":
			x.NameTag, err = dec.ReadText()
		case "kind":
			x.Kind, err = dec.ReadText()
		case "client_type":
			x.ClientType, err = dec.ReadText()
		case "client_id":
			x.MQTTClient, err = dec.ReadText()
		case "nonce":
			x.Nonce, err = dec.ReadText()
		case "id":
			x.ID, err = dec.ReadUint64()
		case "rtt":
			x.RTTNanos, err = dec.ReadInt64()
		case "alts":
			var m uint32
			if m, err = dec.ReadArrayHeader(); err == nil {
				x.Alternates = make([]string, 0, dec.BoundedLen(m))
				for j := uint32(0); j < m && err == nil; j++ {
					var s string
					if s, err = dec.ReadText(); err == nil {
						x.Alternates = append(x.Alternates, s)
					}
				}
			}
		case "tags":
			var m uint32
			if m, err = dec.ReadArrayHeader(); err == nil {
				x.Tags = make([]string, 0, dec.BoundedLen(m))
				for j := uint32(0); j < m && err == nil; j++ {
					var s string
					if s, err = dec.ReadText(); err == nil {
						x.Tags = append(x.Tags, s)
					}
				}
			}
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *RaftGroup) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(6); err != nil {
		return err
	}
	if err := enc.WriteText("name"); err != nil {
		return err
	}
	if err := enc.WriteText(x.Name); err != nil {
		return err
	}
	if err := enc.WriteText("peers"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(uint32(len(x.Peers))); err != nil {
		return err
	}
	for _, p := range x.Peers {
		if err := enc.WriteText(p); err != nil {
			return err
		}
	}
	if err := enc.WriteText("store"); err != nil {
		return err
	}
	if err := x.Storage.MarshalCBOR(enc); err != nil {
		return err
	}
	if err := enc.WriteText("cluster"); err != nil {
		return err
	}
	if err := enc.WriteText(x.Cluster); err != nil {
		return err
	}
	if err := enc.WriteText("preferred"); err != nil {
		return err
	}
	if err := enc.WriteText(x.Preferred); err != nil {
		return err
	}
	if err := enc.WriteText("scale_up"); err != nil {
		return err
	}
	return enc.WriteBool(x.ScaleUp)
}

func (x *RaftGroup) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "name":
			x.Name, err = dec.ReadText()
		case "peers":
			var m uint32
			if m, err = dec.ReadArrayHeader(); err == nil {
				x.Peers = make([]string, 0, dec.BoundedLen(m))
				for j := uint32(0); j < m && err == nil; j++ {
					var s string
					if s, err = dec.ReadText(); err == nil {
						x.Peers = append(x.Peers, s)
					}
				}
			}
		case "store":
			err = x.Storage.UnmarshalCBOR(dec)
		case "cluster":
			x.Cluster, err = dec.ReadText()
		case "preferred":
			x.Preferred, err = dec.ReadText()
		case "scale_up":
			x.ScaleUp, err = dec.ReadBool()
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *SequencePair) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(2); err != nil {
		return err
	}
	if err := enc.WriteText("consumer_seq"); err != nil {
		return err
	}
	if err := enc.WriteUint64(x.Consumer); err != nil {
		return err
	}
	if err := enc.WriteText("stream_seq"); err != nil {
		return err
	}
	return enc.WriteUint64(x.Stream)
}

func (x *SequencePair) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "consumer_seq":
			x.Consumer, err = dec.ReadUint64()
		case "stream_seq":
			x.Stream, err = dec.ReadUint64()
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *Pending) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(2); err != nil {
		return err
	}
	if err := enc.WriteText("sequence"); err != nil {
		return err
	}
	if err := enc.WriteUint64(x.Sequence); err != nil {
		return err
	}
	if err := enc.WriteText("ts"); err != nil {
		return err
	}
	return enc.WriteInt64(x.Timestamp)
}

func (x *Pending) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "sequence":
			x.Sequence, err = dec.ReadUint64()
		case "ts":
			x.Timestamp, err = dec.ReadInt64()
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ConsumerState) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(4); err != nil {
		return err
	}
	if err := enc.WriteText("delivered"); err != nil {
		return err
	}
	if err := x.Delivered.MarshalCBOR(enc); err != nil {
		return err
	}
	if err := enc.WriteText("ack_floor"); err != nil {
		return err
	}
	if err := x.AckFloor.MarshalCBOR(enc); err != nil {
		return err
	}
	if err := enc.WriteText("pending"); err != nil {
		return err
	}
	if err := enc.WriteMapHeader(uint32(len(x.Pending))); err != nil {
		return err
	}
	for k, v := range x.Pending {
		if err := enc.WriteUint64(k); err != nil {
			return err
		}
		if v == nil {
			if err := enc.WriteNone(); err != nil {
				return err
			}
			continue
		}
		if err := v.MarshalCBOR(enc); err != nil {
			return err
		}
	}
	if err := enc.WriteText("redelivered"); err != nil {
		return err
	}
	if err := enc.WriteMapHeader(uint32(len(x.Redelivered))); err != nil {
		return err
	}
	for k, v := range x.Redelivered {
		if err := enc.WriteUint64(k); err != nil {
			return err
		}
		if err := enc.WriteUint64(v); err != nil {
			return err
		}
	}
	return nil
}

func (x *ConsumerState) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "delivered":
			err = x.Delivered.UnmarshalCBOR(dec)
		case "ack_floor":
			err = x.AckFloor.UnmarshalCBOR(dec)
		case "pending":
			var m uint32
			if m, err = dec.ReadMapHeader(); err == nil {
				x.Pending = make(map[uint64]*Pending, dec.BoundedLen(m))
				for j := uint32(0); j < m && err == nil; j++ {
					var k uint64
					if k, err = dec.ReadUint64(); err != nil {
						break
					}
					present, perr := dec.ReadOptionPresent()
					if perr != nil {
						err = perr
						break
					}
					if !present {
						x.Pending[k] = nil
						continue
					}
					v := new(Pending)
					if err = v.UnmarshalCBOR(dec); err == nil {
						x.Pending[k] = v
					}
				}
			}
		case "redelivered":
			var m uint32
			if m, err = dec.ReadMapHeader(); err == nil {
				x.Redelivered = make(map[uint64]uint64, dec.BoundedLen(m))
				for j := uint32(0); j < m && err == nil; j++ {
					var k, v uint64
					if k, err = dec.ReadUint64(); err == nil {
						if v, err = dec.ReadUint64(); err == nil {
							x.Redelivered[k] = v
						}
					}
				}
			}
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *WriteableConsumerAssignment) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(7); err != nil {
		return err
	}
	if err := enc.WriteText("client"); err != nil {
		return err
	}
	if err := writeOptionalClient(enc, x.Client); err != nil {
		return err
	}
	if err := enc.WriteText("created"); err != nil {
		return err
	}
	if err := enc.WriteInt64(x.CreatedUnixNano); err != nil {
		return err
	}
	if err := enc.WriteText("name"); err != nil {
		return err
	}
	if err := enc.WriteText(x.Name); err != nil {
		return err
	}
	if err := enc.WriteText("stream"); err != nil {
		return err
	}
	if err := enc.WriteText(x.Stream); err != nil {
		return err
	}
	if err := enc.WriteText("consumer"); err != nil {
		return err
	}
	if err := enc.WriteBytes(x.ConfigPayload); err != nil {
		return err
	}
	if err := enc.WriteText("group"); err != nil {
		return err
	}
	if err := writeOptionalGroup(enc, x.Group); err != nil {
		return err
	}
	if err := enc.WriteText("state"); err != nil {
		return err
	}
	if x.State == nil {
		return enc.WriteNone()
	}
	return x.State.MarshalCBOR(enc)
}

func (x *WriteableConsumerAssignment) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "client":
			x.Client, err = readOptionalClient(dec)
		case "created":
			x.CreatedUnixNano, err = dec.ReadInt64()
		case "name":
			x.Name, err = dec.ReadText()
		case "stream":
			x.Stream, err = dec.ReadText()
		case "consumer":
			x.ConfigPayload, err = dec.ReadBytes()
		case "group":
			x.Group, err = readOptionalGroup(dec)
		case "state":
			present, perr := dec.ReadOptionPresent()
			if perr != nil {
				err = perr
			} else if present {
				x.State = new(ConsumerState)
				err = x.State.UnmarshalCBOR(dec)
			}
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *WriteableStreamAssignment) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(6); err != nil {
		return err
	}
	if err := enc.WriteText("client"); err != nil {
		return err
	}
	if err := writeOptionalClient(enc, x.Client); err != nil {
		return err
	}
	if err := enc.WriteText("created"); err != nil {
		return err
	}
	if err := enc.WriteInt64(x.CreatedUnixNano); err != nil {
		return err
	}
	if err := enc.WriteText("stream"); err != nil {
		return err
	}
	if err := enc.WriteBytes(x.ConfigPayload); err != nil {
		return err
	}
	if err := enc.WriteText("group"); err != nil {
		return err
	}
	if err := writeOptionalGroup(enc, x.Group); err != nil {
		return err
	}
	if err := enc.WriteText("sync"); err != nil {
		return err
	}
	if err := enc.WriteText(x.Sync); err != nil {
		return err
	}
	if err := enc.WriteText("consumers"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(uint32(len(x.Consumers))); err != nil {
		return err
	}
	for _, c := range x.Consumers {
		if c == nil {
			if err := enc.WriteNone(); err != nil {
				return err
			}
			continue
		}
		if err := c.MarshalCBOR(enc); err != nil {
			return err
		}
	}
	return nil
}

func (x *WriteableStreamAssignment) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "client":
			x.Client, err = readOptionalClient(dec)
		case "created":
			x.CreatedUnixNano, err = dec.ReadInt64()
		case "stream":
			x.ConfigPayload, err = dec.ReadBytes()
		case "group":
			x.Group, err = readOptionalGroup(dec)
		case "sync":
			x.Sync, err = dec.ReadText()
		case "consumers":
			var m uint32
			if m, err = dec.ReadArrayHeader(); err == nil {
				x.Consumers = make([]*WriteableConsumerAssignment, 0, dec.BoundedLen(m))
				for j := uint32(0); j < m && err == nil; j++ {
					present, perr := dec.ReadOptionPresent()
					if perr != nil {
						err = perr
						break
					}
					if !present {
						x.Consumers = append(x.Consumers, nil)
						continue
					}
					c := new(WriteableConsumerAssignment)
					if err = c.UnmarshalCBOR(dec); err == nil {
						x.Consumers = append(x.Consumers, c)
					}
				}
			}
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *MetaSnapshot) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(1); err != nil {
		return err
	}
	if err := enc.WriteText("streams"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(uint32(len(x.Streams))); err != nil {
		return err
	}
	for i := range x.Streams {
		if err := x.Streams[i].MarshalCBOR(enc); err != nil {
			return err
		}
	}
	return nil
}

func (x *MetaSnapshot) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "streams":
			var m uint32
			if m, err = dec.ReadArrayHeader(); err == nil {
				x.Streams = make([]WriteableStreamAssignment, 0, dec.BoundedLen(m))
				for j := uint32(0); j < m && err == nil; j++ {
					var s WriteableStreamAssignment
					if err = s.UnmarshalCBOR(dec); err == nil {
						x.Streams = append(x.Streams, s)
					}
				}
			}
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *StreamConfigSnapshot) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(4); err != nil {
		return err
	}
	if err := enc.WriteText("name"); err != nil {
		return err
	}
	if err := enc.WriteText(x.Name); err != nil {
		return err
	}
	if err := enc.WriteText("subjects"); err != nil {
		return err
	}
	if err := enc.WriteArrayHeader(uint32(len(x.Subjects))); err != nil {
		return err
	}
	for _, s := range x.Subjects {
		if err := enc.WriteText(s); err != nil {
			return err
		}
	}
	if err := enc.WriteText("storage"); err != nil {
		return err
	}
	if err := x.Storage.MarshalCBOR(enc); err != nil {
		return err
	}
	if err := enc.WriteText("metadata"); err != nil {
		return err
	}
	if err := enc.WriteMapHeader(uint32(len(x.Metadata))); err != nil {
		return err
	}
	for k, v := range x.Metadata {
		if err := enc.WriteText(k); err != nil {
			return err
		}
		if err := enc.WriteText(v); err != nil {
			return err
		}
	}
	return nil
}

func (x *StreamConfigSnapshot) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "name":
			x.Name, err = dec.ReadText()
		case "subjects":
			var m uint32
			if m, err = dec.ReadArrayHeader(); err == nil {
				x.Subjects = make([]string, 0, dec.BoundedLen(m))
				for j := uint32(0); j < m && err == nil; j++ {
					var s string
					if s, err = dec.ReadText(); err == nil {
						x.Subjects = append(x.Subjects, s)
					}
				}
			}
		case "storage":
			err = x.Storage.UnmarshalCBOR(dec)
		case "metadata":
			var m uint32
			if m, err = dec.ReadMapHeader(); err == nil {
				x.Metadata = make(map[string]string, dec.BoundedLen(m))
				for j := uint32(0); j < m && err == nil; j++ {
					var k, v string
					if k, err = dec.ReadText(); err == nil {
						if v, err = dec.ReadText(); err == nil {
							x.Metadata[k] = v
						}
					}
				}
			}
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *ConsumerConfigSnapshot) MarshalCBOR(enc *cbor.Encoder) error {
	if err := enc.WriteMapHeader(3); err != nil {
		return err
	}
	if err := enc.WriteText("durable"); err != nil {
		return err
	}
	if err := enc.WriteText(x.Durable); err != nil {
		return err
	}
	if err := enc.WriteText("mem_storage"); err != nil {
		return err
	}
	if err := enc.WriteBool(x.MemoryStorage); err != nil {
		return err
	}
	if err := enc.WriteText("metadata"); err != nil {
		return err
	}
	if err := enc.WriteMapHeader(uint32(len(x.Metadata))); err != nil {
		return err
	}
	for k, v := range x.Metadata {
		if err := enc.WriteText(k); err != nil {
			return err
		}
		if err := enc.WriteText(v); err != nil {
			return err
		}
	}
	return nil
}

func (x *ConsumerConfigSnapshot) UnmarshalCBOR(dec *cbor.Decoder) error {
	n, err := dec.ReadMapHeader()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		key, err := dec.ReadText()
		if err != nil {
			return err
		}
		switch key {
		case "durable":
			x.Durable, err = dec.ReadText()
		case "mem_storage":
			x.MemoryStorage, err = dec.ReadBool()
		case "metadata":
			var m uint32
			if m, err = dec.ReadMapHeader(); err == nil {
				x.Metadata = make(map[string]string, dec.BoundedLen(m))
				for j := uint32(0); j < m && err == nil; j++ {
					var k, v string
					if k, err = dec.ReadText(); err == nil {
						if v, err = dec.ReadText(); err == nil {
							x.Metadata[k] = v
						}
					}
				}
			}
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

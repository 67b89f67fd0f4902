// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package flagset

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Sets serialize as their raw integer value. Decoding validates like [FromBits]
// and rejects values with bits that belong to no declared flag.

// ErrBinaryLength is returned when decoding binary data of the wrong size.
var ErrBinaryLength = errors.New("flagset: invalid binary length")

// MarshalJSON implements [json.Marshaler].
func (s Set[T]) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(s.bits), 10), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var u uint64
	if err := json.Unmarshal(data, &u); err != nil {
		return err
	}

	return s.setUint64(u)
}

// MarshalYAML implements [yaml.Marshaler].
func (s Set[T]) MarshalYAML() (any, error) {
	return uint64(s.bits), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (s *Set[T]) UnmarshalYAML(value *yaml.Node) error {
	var u uint64
	if err := value.Decode(&u); err != nil {
		return err
	}

	return s.setUint64(u)
}

// MarshalTOML implements the github.com/BurntSushi/toml Marshaler interface.
//
// TOML integers are signed 64-bit, so sets with bit 63 set are written in
// two's complement.
func (s Set[T]) MarshalTOML() ([]byte, error) {
	return strconv.AppendInt(nil, int64(uint64(s.bits)), 10), nil
}

// UnmarshalTOML implements the github.com/BurntSushi/toml Unmarshaler interface.
// Negative integers are read as two's complement, like [Set.MarshalTOML] writes them.
func (s *Set[T]) UnmarshalTOML(data any) error {
	i, ok := data.(int64)
	if !ok {
		return fmt.Errorf("%s: expected an integer, got %T(%v): %w", BindingOf[T]().typeName, data, data, ErrInvalidBits)
	}

	return s.setUint64(uint64(i))
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (s Set[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeUint(uint64(s.bits))
}

// DecodeMsgpack implements [msgpack.CustomDecoder].
func (s *Set[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	u, err := dec.DecodeUint64()
	if err != nil {
		return err
	}

	return s.setUint64(u)
}

// AppendBinary implements [encoding.BinaryAppender]. The raw value is appended
// in little-endian byte order, using exactly the size of the representation.
func (s Set[T]) AppendBinary(b []byte) ([]byte, error) {
	u := uint64(s.bits)

	switch BindingOf[T]().Size() {
	case 1:
		return append(b, byte(u)), nil
	case 2:
		return binary.LittleEndian.AppendUint16(b, uint16(u)), nil
	case 4:
		return binary.LittleEndian.AppendUint32(b, uint32(u)), nil
	default:
		return binary.LittleEndian.AppendUint64(b, u), nil
	}
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (s Set[T]) MarshalBinary() ([]byte, error) {
	return s.AppendBinary(make([]byte, 0, BindingOf[T]().Size()))
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (s *Set[T]) UnmarshalBinary(data []byte) error {
	size := BindingOf[T]().Size()
	if len(data) != size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBinaryLength, len(data), size)
	}

	var u uint64

	switch size {
	case 1:
		u = uint64(data[0])
	case 2:
		u = uint64(binary.LittleEndian.Uint16(data))
	case 4:
		u = uint64(binary.LittleEndian.Uint32(data))
	default:
		u = binary.LittleEndian.Uint64(data)
	}

	return s.setUint64(u)
}

func (s *Set[T]) setUint64(u uint64) error {
	set, err := FromUint64[T](u)
	if err != nil {
		return err
	}

	*s = set

	return nil
}

package qtx

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

const (
	MaxGTRIDSize = 64
	MaxBQUALSize = 64

	xidHeaderSize = 4 + 1
)

// ForeignXID - идентификатор транзакции произвольной реализации. Равенство [XID] определено относительно этого
// интерфейса, поэтому идентификаторы с одинаковым содержимым равны независимо от их конкретного типа.
type ForeignXID interface {
	FormatID() int32
	GlobalTransactionID() []byte
	BranchQualifier() []byte
}

// XID - неизменяемый идентификатор транзакции (gtrid) и ее ветви (bqual).
// Внутреннее представление: байт смещения len(gtrid)+1, затем gtrid, затем bqual. Нулевое значение XID не является
// допустимым идентификатором, см. [XID.IsZero].
type XID struct {
	formatID int32
	data     []byte
	hash     uint64
}

// NewXID создает идентификатор. Возвращает ErrInvalidArgument, если длина gtrid или bqual вне диапазона 1..64.
func NewXID(formatID int32, gtrid, bqual []byte) (XID, error) {
	if len(gtrid) == 0 || len(gtrid) > MaxGTRIDSize {
		return XID{}, txError(KindInvalidArgument, "xid", XID{},
			fmt.Errorf("global transaction id length %d out of range 1..%d", len(gtrid), MaxGTRIDSize))
	}
	if len(bqual) == 0 || len(bqual) > MaxBQUALSize {
		return XID{}, txError(KindInvalidArgument, "xid", XID{},
			fmt.Errorf("branch qualifier length %d out of range 1..%d", len(bqual), MaxBQUALSize))
	}
	data := make([]byte, 0, 1+len(gtrid)+len(bqual))
	data = append(data, byte(len(gtrid)+1))
	data = append(data, gtrid...)
	data = append(data, bqual...)
	x := XID{formatID: formatID, data: data}
	x.hash = hashParts(formatID, gtrid, bqual)
	return x, nil
}

// GenerateXID создает идентификатор новой транзакции со случайными gtrid и bqual.
func GenerateXID(formatID int32) XID {
	gtrid, bqual := uuid.New(), uuid.New()
	x, err := NewXID(formatID, gtrid[:], bqual[:])
	if err != nil {
		panic(err)
	}
	return x
}

// FromForeign копирует произвольный идентификатор в XID.
func FromForeign(f ForeignXID) (XID, error) {
	if x, ok := f.(XID); ok {
		return x, nil
	}
	return NewXID(f.FormatID(), f.GlobalTransactionID(), f.BranchQualifier())
}

// Branch возвращает идентификатор ветви с тем же gtrid и указанным bqual.
func (x XID) Branch(bqual []byte) (XID, error) {
	if x.IsZero() {
		return XID{}, txError(KindInvalidArgument, "xid", XID{}, errors.New("branch of zero xid"))
	}
	return NewXID(x.formatID, x.gtrid(), bqual)
}

func (x XID) IsZero() bool {
	return len(x.data) == 0
}

func (x XID) FormatID() int32 {
	return x.formatID
}

// GlobalTransactionID возвращает копию gtrid.
func (x XID) GlobalTransactionID() []byte {
	return bytes.Clone(x.gtrid())
}

// BranchQualifier возвращает копию bqual.
func (x XID) BranchQualifier() []byte {
	return bytes.Clone(x.bqual())
}

func (x XID) gtrid() []byte {
	if x.IsZero() {
		return nil
	}
	return x.data[1:x.data[0]]
}

func (x XID) bqual() []byte {
	if x.IsZero() {
		return nil
	}
	return x.data[x.data[0]:]
}

// Hash возвращает хеш, вычисленный при создании идентификатора. Совпадает с [HashXID] для любого ForeignXID с тем
// же содержимым.
func (x XID) Hash() uint64 {
	return x.hash
}

// Equal сравнивает формат и побайтно обе части идентификатора.
func (x XID) Equal(other ForeignXID) bool {
	if other == nil {
		return false
	}
	if o, ok := other.(XID); ok {
		return x.formatID == o.formatID && x.hash == o.hash && bytes.Equal(x.data, o.data)
	}
	return x.formatID == other.FormatID() &&
		bytes.Equal(x.gtrid(), other.GlobalTransactionID()) &&
		bytes.Equal(x.bqual(), other.BranchQualifier())
}

// HashXID вычисляет хеш идентификатора любой реализации.
func HashXID(f ForeignXID) uint64 {
	if x, ok := f.(XID); ok {
		return x.hash
	}
	return hashParts(f.FormatID(), f.GlobalTransactionID(), f.BranchQualifier())
}

func hashParts(formatID int32, gtrid, bqual []byte) uint64 {
	d := xxhash.New()
	var hdr [xidHeaderSize]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(formatID))
	hdr[4] = byte(len(gtrid) + 1)
	_, _ = d.Write(hdr[:])
	_, _ = d.Write(gtrid)
	_, _ = d.Write(bqual)
	return d.Sum64()
}

func (x XID) String() string {
	if x.IsZero() {
		return "<nil>"
	}
	return strconv.FormatInt(int64(x.formatID), 10) + ":" + hex.EncodeToString(x.gtrid()) + ":" +
		hex.EncodeToString(x.bqual())
}

// AppendBinary дописывает к b представление идентификатора для обмена с диспетчерами ресурсов:
// [formatID: 4 байта big-endian][смещение: 1 байт][gtrid][bqual].
func (x XID) AppendBinary(b []byte) ([]byte, error) {
	if x.IsZero() {
		return b, txError(KindInvalidArgument, "xid.marshal", XID{}, errors.New("zero xid"))
	}
	b = binary.BigEndian.AppendUint32(b, uint32(x.formatID))
	return append(b, x.data...), nil
}

// MarshalBinary реализует encoding.BinaryMarshaler, см. [XID.AppendBinary].
func (x XID) MarshalBinary() ([]byte, error) {
	return x.AppendBinary(make([]byte, 0, 4+len(x.data)))
}

// UnmarshalBinary реализует encoding.BinaryUnmarshaler.
func (x *XID) UnmarshalBinary(b []byte) error {
	parsed, err := ParseXID(b)
	if err != nil {
		return err
	}
	*x = parsed
	return nil
}

// ParseXID разбирает представление, созданное [XID.MarshalBinary].
func ParseXID(b []byte) (XID, error) {
	if len(b) < xidHeaderSize {
		return XID{}, txError(KindInvalidArgument, "xid.unmarshal", XID{},
			fmt.Errorf("short buffer: %d bytes", len(b)))
	}
	formatID := int32(binary.BigEndian.Uint32(b[:4]))
	offset := int(b[4])
	body := b[4:]
	if offset < 1 || offset > len(body) {
		return XID{}, txError(KindInvalidArgument, "xid.unmarshal", XID{},
			fmt.Errorf("offset byte %d exceeds %d byte body", offset, len(body)))
	}
	return NewXID(formatID, body[1:offset], body[offset:])
}

package qtx

// Status - статус транзакции.
type Status int

const (
	StatusActive Status = iota
	StatusMarkedRollback
	StatusPreparing
	StatusPrepared
	StatusCommitting
	StatusCommitted
	StatusRollingBack
	StatusRolledBack
	// StatusUnknown - эвристический исход, требующий вмешательства администратора.
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusMarkedRollback:
		return "MARKED_ROLLBACK"
	case StatusPreparing:
		return "PREPARING"
	case StatusPrepared:
		return "PREPARED"
	case StatusCommitting:
		return "COMMITTING"
	case StatusCommitted:
		return "COMMITTED"
	case StatusRollingBack:
		return "ROLLING_BACK"
	case StatusRolledBack:
		return "ROLLED_BACK"
	case StatusUnknown:
		return "UNKNOWN"
	}
	return "INVALID"
}

// IsTerminal сообщает, является ли статус окончательным.
func (s Status) IsTerminal() bool {
	return s == StatusCommitted || s == StatusRolledBack || s == StatusUnknown
}

// Vote - голос диспетчера ресурсов на фазе подготовки.
type Vote int

const (
	VoteUnset Vote = iota
	VotePrepared
	VoteReadOnly
	VoteRollback
)

func (v Vote) String() string {
	switch v {
	case VoteUnset:
		return "UNSET"
	case VotePrepared:
		return "PREPARED"
	case VoteReadOnly:
		return "READ_ONLY"
	case VoteRollback:
		return "ROLLBACK"
	}
	return "INVALID"
}

// Flags - флаги start/end ассоциации ветви с диспетчером ресурсов.
type Flags int

const (
	TMNoFlags Flags = 0
	TMJoin    Flags = 0x00200000
	TMResume  Flags = 0x08000000
	TMSuccess Flags = 0x04000000
	TMFail    Flags = 0x20000000
	TMSuspend Flags = 0x02000000
)

package qlattice

import "time"

/*
AuditRecord is an immutable entry in a lattice's audit ledger. Each
audit appends one record, so the ledger is a complete ordered history of
every interference pattern the lattice has been asked to judge and the
verdict it reached.
*/
type AuditRecord struct {
	Timestamp   time.Time
	Pattern     string
	Verdict     string
	ShieldAfter bool
	Sequence    uint64 // Monotonically increasing sequence number
}

// record appends an audit outcome to the ledger. Callers must hold the
// lattice write lock; ShieldAfter captures the status already updated
// by the audit.
func (l *Lattice) record(pattern, verdict string) {
	l.ledger = append(l.ledger, AuditRecord{
		Timestamp:   time.Now(),
		Pattern:     pattern,
		Verdict:     verdict,
		ShieldAfter: l.status.ShieldActive,
		Sequence:    uint64(len(l.ledger)),
	})
}

/*
AuditHistory returns all audit records since a given sequence number, in
order. Pass 0 for the complete history. The returned slice is a copy;
the ledger itself stays immutable.
*/
func (l *Lattice) AuditHistory(sinceSequence uint64) []AuditRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if sinceSequence >= uint64(len(l.ledger)) {
		return []AuditRecord{}
	}

	history := make([]AuditRecord, len(l.ledger)-int(sinceSequence))
	copy(history, l.ledger[sinceSequence:])
	return history
}

package data

// EntityState is the pending state of a tracked user
type EntityState int

const (
	StateDetached EntityState = iota
	StateUnchanged
	StateAdded
	StateModified
	StateDeleted
)

func (s EntityState) String() string {
	switch s {
	case StateUnchanged:
		return "Unchanged"
	case StateAdded:
		return "Added"
	case StateModified:
		return "Modified"
	case StateDeleted:
		return "Deleted"
	default:
		return "Detached"
	}
}

// UserEntry pairs a tracked user with its pending state. Original is the
// stored row as it was before this unit of work; it is nil for Added entries
// until SaveChanges loads it for Modified and Deleted entries.
type UserEntry struct {
	State    EntityState
	Original *User
	Current  *User
}

// ChangeTracker collects the user mutations and audit rows of one unit of work
type ChangeTracker struct {
	entries   []*UserEntry
	auditLogs []*AuditLog
}

// NewChangeTracker creates an empty unit of work
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{}
}

// Add tracks a new user to be inserted
func (t *ChangeTracker) Add(user *User) *UserEntry {
	return t.track(StateAdded, user)
}

// Update tracks a stored user whose fields have been replaced
func (t *ChangeTracker) Update(user *User) *UserEntry {
	return t.track(StateModified, user)
}

// Remove tracks a stored user to be deleted
func (t *ChangeTracker) Remove(user *User) *UserEntry {
	return t.track(StateDeleted, user)
}

func (t *ChangeTracker) track(state EntityState, user *User) *UserEntry {
	entry := &UserEntry{State: state, Current: user}
	t.entries = append(t.entries, entry)
	return entry
}

// Entries returns the tracked users in the order they were tracked
func (t *ChangeTracker) Entries() []*UserEntry {
	return t.entries
}

// AddAuditLogs queues audit rows to be inserted with the tracked changes
func (t *ChangeTracker) AddAuditLogs(logs ...*AuditLog) {
	t.auditLogs = append(t.auditLogs, logs...)
}

// PendingAuditLogs returns the queued audit rows
func (t *ChangeTracker) PendingAuditLogs() []*AuditLog {
	return t.auditLogs
}

// HasChanges reports whether anything would be written on save
func (t *ChangeTracker) HasChanges() bool {
	if len(t.auditLogs) > 0 {
		return true
	}
	for _, entry := range t.entries {
		switch entry.State {
		case StateAdded, StateModified, StateDeleted:
			return true
		}
	}
	return false
}

// AcceptChanges marks a committed unit of work as clean
func (t *ChangeTracker) AcceptChanges() {
	kept := t.entries[:0]
	for _, entry := range t.entries {
		if entry.State == StateDeleted {
			entry.State = StateDetached
			continue
		}
		entry.State = StateUnchanged
		entry.Original = entry.Current.Clone()
		kept = append(kept, entry)
	}
	t.entries = kept
	t.auditLogs = nil
}

// checkpoint records what SaveChanges may change on tracked objects so a
// rolled-back unit of work leaves the tracker as the caller built it
type checkpoint struct {
	auditLogs  int
	auditIDs   []int64
	loaded     []bool
	insertedID []int64
}

func (t *ChangeTracker) checkpoint() checkpoint {
	cp := checkpoint{
		auditLogs:  len(t.auditLogs),
		auditIDs:   make([]int64, len(t.auditLogs)),
		loaded:     make([]bool, len(t.entries)),
		insertedID: make([]int64, len(t.entries)),
	}
	for i, log := range t.auditLogs {
		cp.auditIDs[i] = log.ID
	}
	for i, entry := range t.entries {
		cp.loaded[i] = entry.Original != nil
		cp.insertedID[i] = entry.Current.ID
	}
	return cp
}

func (t *ChangeTracker) restore(cp checkpoint) {
	t.auditLogs = t.auditLogs[:cp.auditLogs]
	for i, log := range t.auditLogs {
		log.ID = cp.auditIDs[i]
	}
	for i, entry := range t.entries {
		if !cp.loaded[i] {
			entry.Original = nil
		}
		if entry.State == StateAdded {
			entry.Current.ID = cp.insertedID[i]
		}
	}
}

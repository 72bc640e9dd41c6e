package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrImbalanced indicates a posting set whose debits and credits do not
// balance within the accepted tolerance.
var ErrImbalanced = errors.New("debits and credits do not balance")

// ErrLockedEntry indicates an attempt to mutate a register entry that has
// already been posted to the ledger.
var ErrLockedEntry = errors.New("posted entries are locked")

// ErrAlreadyPosted indicates an attempt to approve a register entry a second time.
var ErrAlreadyPosted = errors.New("entry is already posted")

// ErrInvalidSnapshot indicates that an imported backup snapshot is malformed
// or carries an incompatible version.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// ErrOutOfBalance indicates a ledger-wide consistency failure: the trial
// balance debit and credit columns disagree, which can only happen if an
// unbalanced transaction was admitted to the store.
var ErrOutOfBalance = errors.New("ledger is out of balance")

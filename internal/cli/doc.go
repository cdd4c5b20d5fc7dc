// Package cli provides the interactive bookstore command interpreter.
//
// It wires configuration, the record stores, and the privilege-gated command
// set into a line-oriented REPL. Each input line is tokenized (double quotes
// group spaces into one token), the first token selects the command, and any
// command that cannot be carried out answers with a single "Invalid" line.
//
// Key commands:
//   - Accounts: register, su, logout, passwd, useradd, delete
//   - Catalog: show, select, modify, import, buy
//   - Reporting: show finance, log, report
//
// The REPL is started via App.Run(ctx), which blocks until EOF or quit.
// See Dispatch and runREPL for details.
package cli

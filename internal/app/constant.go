package app

import "errors"

const LogPrefixApp = "internal.app.New"

var errNoDatabase = errors.New("database is not open")

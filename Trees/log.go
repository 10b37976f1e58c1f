package Trees

import "github.com/sirupsen/logrus"

// Log receives the diagnostics of the package, such as lookups of values that
// aren't in a tree. Replace it or change its level to silence them.
var Log = logrus.New()

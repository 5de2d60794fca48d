package stm32

import (
	"regexp"
	"strconv"
)

var (
	pinCountRegexp    = regexp.MustCompile(`[0-9]+`)
	packageCodeRegexp = regexp.MustCompile(`[A-Za-z.]+`)
)

// ParsePackage splits a package name such as "LQFP100" into the pin count
// and the package code.
func ParsePackage(device, raw string) (pinCount int, code string, err error) {
	digits := pinCountRegexp.FindString(raw)
	code = packageCodeRegexp.FindString(raw)
	if digits == "" || code == "" {
		return 0, "", &PackageError{Device: device, Package: raw}
	}
	pinCount, err = strconv.Atoi(digits)
	if err != nil {
		return 0, "", &PackageError{Device: device, Package: raw}
	}
	return pinCount, code, nil
}

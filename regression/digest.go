// This file is part of vgaverify.
//
// vgaverify is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgaverify is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgaverify.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/database"
	"github.com/jetsetilly/vgaverify/digest"
	"github.com/jetsetilly/vgaverify/dut/adapters"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
	"github.com/jetsetilly/vgaverify/logger"
	"github.com/jetsetilly/vgaverify/verify"
)

const digestEntryID = "digest"

const (
	digestFieldAdapter int = iota
	digestFieldDevice
	digestFieldBaud
	digestFieldNotes
	digestFieldDigest
	numDigestFields
)

// DigestRegression is the simplest regression type. It runs the frame
// scenario on the device and compares the digest of the frame with the
// recorded value. The entry tracks the digest only: a verification failure
// is logged but does not fail the entry.
type DigestRegression struct {
	Adapter string
	Device  string
	Baud    int
	Notes   string
	Digest  string
}

// NewDigestRegression is the preferred method of initialisation for the
// DigestRegression type.
func NewDigestRegression(adapter string, device string, baud int) *DigestRegression {
	return &DigestRegression{
		Adapter: strings.ToUpper(adapter),
		Device:  device,
		Baud:    baud,
	}
}

func deserialiseDigestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &DigestRegression{}

	// basic sanity check
	if len(fields) > numDigestFields {
		return nil, curated.Errorf(RegressionError, "too many fields in digest entry")
	}
	if len(fields) < numDigestFields {
		return nil, curated.Errorf(RegressionError, "too few fields in digest entry")
	}

	var err error

	reg.Adapter = fields[digestFieldAdapter]
	reg.Device = fields[digestFieldDevice]
	reg.Notes = fields[digestFieldNotes]
	reg.Digest = fields[digestFieldDigest]

	reg.Baud, err = strconv.Atoi(fields[digestFieldBaud])
	if err != nil {
		return nil, curated.Errorf(RegressionError, fmt.Sprintf("invalid baud rate [%s]", fields[digestFieldBaud]))
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg DigestRegression) ID() string {
	return digestEntryID
}

// String implements the database.Entry interface.
func (reg DigestRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s", reg.ID(), reg.Adapter))
	if reg.Device != "" {
		s.WriteString(fmt.Sprintf(" %s@%d", reg.Device, reg.Baud))
	}
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() (database.SerialisedEntry, error) {
	if strings.ContainsAny(reg.Notes, ",\n") || strings.ContainsAny(reg.Device, ",\n") {
		return nil, curated.Errorf(RegressionError, "digest entry fields cannot contain commas or newlines")
	}
	return database.SerialisedEntry{
		reg.Adapter,
		reg.Device,
		strconv.Itoa(reg.Baud),
		reg.Notes,
		reg.Digest,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg DigestRegression) CleanUp() error {
	// no cleanup necessary
	return nil
}

// regress implements the Regressor interface.
func (reg *DigestRegression) regress(newRegression bool) (bool, string, error) {
	lnk, err := adapters.Create(reg.Adapter, reg.Device, reg.Baud)
	if err != nil {
		return false, "", curated.Errorf(RegressionError, err)
	}
	defer lnk.Close()

	mode := specification.VGA640x480

	ctx, err := verify.NewContext(lnk, mode)
	if err != nil {
		return false, "", curated.Errorf(RegressionError, err)
	}

	cfg := verify.DefaultConfig()
	cfg.Basic = false
	cfg.Frame = true
	cfg.ProgressInterval = 0

	su := verify.NewSuite(ctx, cfg)
	dig := digest.NewVideo(mode)
	su.AddSink(dig)

	results, err := su.Run()
	if err != nil {
		return false, "", curated.Errorf(RegressionError, err)
	}
	if !verify.Passed(results) {
		logger.Logf(logger.Allow, "regression", "%s: verification failed (digest compared only)", reg)
	}

	if newRegression {
		reg.Digest = dig.Hash()
		return true, "", nil
	}

	if dig.Hash() != reg.Digest {
		return false, "digest mismatch", nil
	}

	return true, "", nil
}

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

package paths_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/vgaverify/paths"
	"github.com/jetsetilly/vgaverify/test"
)

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("snapshot", ".png")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "snapshot_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".png"))

	fn = paths.UniqueFilename("snapshot", "")
	test.ExpectFailure(t, strings.Contains(fn, "."))
}

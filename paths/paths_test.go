// This file is part of Datapath.
//
// Datapath is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Datapath is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Datapath.  If not, see <https://www.gnu.org/licenses/>.


package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/datapath/test"
)

func TestResourcePath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(baseResourcePath, 0700))

	test.ExpectEquality(t, ResourcePath("traces", "run.vcd"), filepath.Join(".datapath", "traces", "run.vcd"))
	test.ExpectEquality(t, ResourcePath("", "run.vcd"), filepath.Join(".datapath", "run.vcd"))
	test.ExpectEquality(t, ResourcePath(), ".datapath")

	pth, err := CreateResourcePath("traces", "run.vcd")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".datapath", "traces", "run.vcd"))

	_, err = os.Stat(filepath.Join(".datapath", "traces"))
	test.ExpectSuccess(t, err)
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("trace", "ADD", n), "trace_ADD_20240305_070809")
	test.ExpectEquality(t, uniqueFilename("trace", "  ", n), "trace_20240305_070809")
}

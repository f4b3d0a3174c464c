// Package main contains a command to convert rotations between
// representations.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"go.viam.com/rotation"
	"go.viam.com/rotation/linalg"
)

var logger = golog.NewDevelopmentLogger("rotconv")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	From    string `flag:"from,default=quaternion,usage=representation of the input value"`
	To      string `flag:"to,default=all,usage=representation to print"`
	Value   string `flag:"value,usage=space-delimited components of the input rotation"`
	File    string `flag:"file,usage=JSON file of tagged rotations to convert"`
	Degrees bool   `flag:"degrees,usage=read and write angles in degrees"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	if (argsParsed.Value == "") == (argsParsed.File == "") {
		return errors.New("need exactly one of -value or -file")
	}

	if argsParsed.File != "" {
		return convertFile(argsParsed.File, argsParsed.To, argsParsed.Degrees, logger)
	}

	q, err := parseValue(argsParsed.From, argsParsed.Value, argsParsed.Degrees)
	if err != nil {
		return err
	}
	return formatRotation(q, argsParsed.To, argsParsed.Degrees, logger)
}

func parseFloats(value string, want int) ([]float64, error) {
	fields := strings.Fields(value)
	if len(fields) != want {
		return nil, errors.Errorf("expected %d numbers, got %d", want, len(fields))
	}
	out := make([]float64, 0, want)
	for _, field := range fields {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Errorf("bad number %q", field)
		}
		out = append(out, f)
	}
	return out, nil
}

// parseValue reads the space-delimited components of a rotation written in
// the given representation. Quaternions are normalized and axis angle axes
// are scaled to the unit sphere, so roughly written inputs are fine.
func parseValue(from, value string, degrees bool) (rotation.Quaternion[float64], error) {
	var zero rotation.Quaternion[float64]
	switch rotation.RotationType(from) {
	case rotation.QuaternionType:
		f, err := parseFloats(value, 4)
		if err != nil {
			return zero, err
		}
		return rotation.NewQuaternion(f[0], f[1], f[2], f[3]).Normalize(), nil
	case rotation.AxisAnglesType:
		f, err := parseFloats(value, 4)
		if err != nil {
			return zero, err
		}
		th := f[0]
		if degrees {
			th = linalg.DegToRad(th)
		}
		unit, err := rotation.AxisAngle[float64]{Theta: th, RX: f[1], RY: f[2], RZ: f[3]}.Normalized()
		if err != nil {
			return zero, err
		}
		return unit.Quaternion(), nil
	case rotation.EulerAnglesType:
		f, err := parseFloats(value, 3)
		if err != nil {
			return zero, err
		}
		if degrees {
			for i := range f {
				f[i] = linalg.DegToRad(f[i])
			}
		}
		return rotation.NewFromEulerAngles(f[0], f[1], f[2]), nil
	case rotation.RotationMatrixType:
		f, err := parseFloats(value, 9)
		if err != nil {
			return zero, err
		}
		var m linalg.Mat3[float64]
		copy(m[:], f)
		return rotation.NewFromRotationMatrix(m), nil
	default:
		return zero, errors.Errorf("rotation type %s not recognized", from)
	}
}

// formatRotation prints q in the given representation, one line per
// representation, each line re-ingestable through -value. The special
// representation "all" prints every one of them.
func formatRotation(q rotation.Quaternion[float64], to string, degrees bool, logger golog.Logger) error {
	if to == "all" {
		for _, t := range []rotation.RotationType{
			rotation.QuaternionType,
			rotation.AxisAnglesType,
			rotation.EulerAnglesType,
			rotation.RotationMatrixType,
		} {
			if err := formatRotation(q, string(t), degrees, logger); err != nil {
				return err
			}
		}
		return nil
	}

	switch rotation.RotationType(to) {
	case rotation.QuaternionType:
		fmt.Printf("quaternion: %g %g %g %g\n", q.X, q.Y, q.Z, q.R)
	case rotation.AxisAnglesType:
		if _, err := q.Axis(); err != nil {
			logger.Warn("rotation angle is zero; reporting the +z axis")
		}
		aa := q.AxisAngle()
		th := aa.Theta
		if degrees {
			th = linalg.RadToDeg(th)
		}
		fmt.Printf("axis_angles: %g %g %g %g\n", th, aa.RX, aa.RY, aa.RZ)
	case rotation.EulerAnglesType:
		ea := q.EulerAngles()
		rx, ry, rz := ea.RX, ea.RY, ea.RZ
		if degrees {
			rx, ry, rz = linalg.RadToDeg(rx), linalg.RadToDeg(ry), linalg.RadToDeg(rz)
		}
		fmt.Printf("euler_angles: %g %g %g\n", rx, ry, rz)
	case rotation.RotationMatrixType:
		m := q.RotationMatrixTranspose().Transpose()
		fmt.Printf("rotation_matrix: %g %g %g %g %g %g %g %g %g\n",
			m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	default:
		return errors.Errorf("rotation type %s not recognized", to)
	}
	return nil
}

// convertFile prints every rotation config in a JSON file, collecting the
// entries that fail to parse instead of stopping at the first one.
func convertFile(path, to string, degrees bool, logger golog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cfgs []rotation.RotationConfig
	if err := json.Unmarshal(data, &cfgs); err != nil {
		return err
	}
	logger.Debugf("converting %d rotations", len(cfgs))

	var errs error
	for i, cfg := range cfgs {
		q, err := rotation.ParseConfig(cfg)
		if err != nil {
			errs = multierr.Combine(errs, errors.Wrapf(err, "rotation %d", i))
			continue
		}
		fmt.Printf("rotation %d\n", i)
		if err := formatRotation(q, to, degrees, logger); err != nil {
			// keep the parse errors collected so far in the report
			return multierr.Combine(errs, err)
		}
	}
	return errs
}

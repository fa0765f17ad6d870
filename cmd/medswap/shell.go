package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"medswap/internal/match"
	"medswap/internal/registry"
	"medswap/models"
	"medswap/repository"
)

const dateLayout = "2006-01-02"

// shell is the interactive operator loop. All input parsing and
// validation happens here; the core trusts the values it is handed.
type shell struct {
	reg     *registry.Registry
	matcher *match.Matcher
	ledger  repository.AllocationRepositoryI
	in      *bufio.Reader
	out     io.Writer
	log     *slog.Logger
}

func (s *shell) run(ctx context.Context) error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "1. Register donor      2. Register recipient  3. Match recipient by ID")
		fmt.Fprintln(s.out, "4. Match all           5. View users          6. View by medicine")
		fmt.Fprintln(s.out, "7. Search medicines    8. Stats               9. Match log")
		fmt.Fprintln(s.out, "0. Exit")

		choice, err := s.readLine("> ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.registerDonor()
		case "2":
			err = s.registerRecipient()
		case "3":
			err = s.matchOne(ctx)
		case "4":
			err = s.matchAll(ctx)
		case "5":
			s.viewUsers()
		case "6":
			err = s.viewByMedicine()
		case "7":
			err = s.searchMedicines()
		case "8":
			err = s.stats(ctx)
		case "9":
			err = s.matchLog(ctx)
		case "0":
			return nil
		default:
			fmt.Fprintln(s.out, "Unknown choice")
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, "Error:", err)
		}
	}
}

func (s *shell) registerDonor() error {
	name, contact, loc, medicine, qty, err := s.readCommon()
	if err != nil {
		return err
	}
	raw, err := s.readLine("Expiry (yyyy-mm-dd): ")
	if err != nil {
		return err
	}
	expiry, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid expiry date: %w", err)
	}
	d := s.reg.RegisterDonor(name, contact, loc, medicine, qty, expiry)
	s.log.Info("donor registered", "id", d.ID, "medicine", d.Medicine, "quantity", d.Quantity)
	fmt.Fprintf(s.out, "Registered donor #%d\n", d.ID)
	return nil
}

func (s *shell) registerRecipient() error {
	name, contact, loc, medicine, qty, err := s.readCommon()
	if err != nil {
		return err
	}
	urgency, err := s.readInt("Urgency (1-5): ")
	if err != nil {
		return err
	}
	if urgency < 1 || urgency > 5 {
		return fmt.Errorf("urgency %d out of range 1-5", urgency)
	}
	r := s.reg.RegisterRecipient(name, contact, loc, medicine, qty, urgency)
	s.log.Info("recipient registered", "id", r.ID, "medicine", r.Medicine, "quantity", r.Quantity)
	fmt.Fprintf(s.out, "Registered recipient #%d\n", r.ID)
	return nil
}

func (s *shell) readCommon() (name, contact string, loc models.Coordinate, medicine string, qty int, err error) {
	if name, err = s.readLine("Name: "); err != nil {
		return
	}
	if contact, err = s.readLine("Contact: "); err != nil {
		return
	}
	if loc, err = s.readCoordinate("Lat Lon: "); err != nil {
		return
	}
	if medicine, err = s.readLine("Medicine: "); err != nil {
		return
	}
	if qty, err = s.readInt("Quantity: "); err != nil {
		return
	}
	if qty < 0 {
		err = fmt.Errorf("quantity must be non-negative")
	}
	return
}

func (s *shell) matchOne(ctx context.Context) error {
	id, err := s.readInt("Recipient ID: ")
	if err != nil {
		return err
	}
	r := s.reg.Recipient(int64(id))
	if r == nil {
		fmt.Fprintln(s.out, "No such recipient")
		return nil
	}
	if r.Status != models.StatusPending {
		fmt.Fprintln(s.out, "Recipient already fully matched")
		return nil
	}
	allocs, err := s.matcher.MatchOne(ctx, int64(id))
	s.renderAllocations(allocs)
	return err
}

func (s *shell) matchAll(ctx context.Context) error {
	allocs, err := s.matcher.MatchAll(ctx)
	s.renderAllocations(allocs)
	return err
}

func (s *shell) renderAllocations(allocs []models.Allocation) {
	if len(allocs) == 0 {
		fmt.Fprintln(s.out, "No matches made")
		return
	}
	for _, a := range allocs {
		fmt.Fprintf(s.out, "Matched: %s -> %s (%d)\n", a.DonorName, a.RecipientName, a.Units)
	}
}

func (s *shell) viewUsers() {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tMEDICINE\tQTY\tSTATUS")
	for _, rec := range s.reg.Users() {
		u := rec.Base()
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", u.ID, u.Name, u.Role, u.Medicine, u.Quantity, u.Status)
	}
	_ = w.Flush()
}

func (s *shell) viewByMedicine() error {
	medicine, err := s.readLine("Medicine: ")
	if err != nil {
		return err
	}
	donors, recipients := s.reg.ListByMedicine(medicine)
	fmt.Fprintln(s.out, "Donors:")
	for _, d := range donors {
		fmt.Fprintf(s.out, "  %d %s Qty:%d\n", d.ID, d.Name, d.Quantity)
	}
	fmt.Fprintln(s.out, "Recipients:")
	for _, r := range recipients {
		fmt.Fprintf(s.out, "  %d %s Need:%d\n", r.ID, r.Name, r.Quantity)
	}
	return nil
}

func (s *shell) searchMedicines() error {
	prefix, err := s.readLine("Prefix: ")
	if err != nil {
		return err
	}
	names := s.reg.SearchMedicines(prefix)
	if len(names) == 0 {
		fmt.Fprintln(s.out, "No medicines found")
		return nil
	}
	for _, n := range names {
		fmt.Fprintln(s.out, " ", n)
	}
	return nil
}

func (s *shell) stats(ctx context.Context) error {
	st := s.reg.Stats()
	fmt.Fprintln(s.out, "Users:", st.Users)
	fmt.Fprintln(s.out, "Pending Donors:", st.PendingDonors)
	fmt.Fprintln(s.out, "Pending Recipients:", st.PendingRecipients)
	fmt.Fprintln(s.out, "Total Donated Units:", st.UnitsTransferred)

	// Cross-check against the ledger; a mismatch means recording failed
	// at some point during the session.
	total, err := s.ledger.TotalUnits(ctx)
	if err != nil {
		return fmt.Errorf("ledger total: %w", err)
	}
	if total != st.UnitsTransferred {
		s.log.Warn("ledger total diverges from registry counter", "ledger", total, "registry", st.UnitsTransferred)
	}
	return nil
}

func (s *shell) matchLog(ctx context.Context) error {
	allocs, err := s.ledger.List(ctx, 100, 0)
	if err != nil {
		return fmt.Errorf("list allocations: %w", err)
	}
	if len(allocs) == 0 {
		fmt.Fprintln(s.out, "No allocations recorded")
		return nil
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONOR\tRECIPIENT\tMEDICINE\tUNITS\tAT")
	for _, a := range allocs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", a.ID, a.DonorName, a.RecipientName, a.Medicine, a.Units, a.CreatedAt)
	}
	return w.Flush()
}

func (s *shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *shell) readInt(prompt string) (int, error) {
	raw, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return n, nil
}

func (s *shell) readCoordinate(prompt string) (models.Coordinate, error) {
	raw, err := s.readLine(prompt)
	if err != nil {
		return models.Coordinate{}, err
	}
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return models.Coordinate{}, fmt.Errorf("expected two values, got %q", raw)
	}
	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid latitude %q", fields[0])
	}
	lng, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid longitude %q", fields[1])
	}
	return models.Coordinate{Lat: lat, Lng: lng}, nil
}

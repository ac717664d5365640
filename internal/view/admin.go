package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/store"
)

func shell(title string, body ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				Script(Src(tailwindCDN)),
			),
			Body(Class("min-h-screen bg-gray-50 text-gray-900"),
				Div(Class("mx-auto max-w-4xl px-4 py-12"), g.Group(body)),
			),
		),
	)
}

// LoginPage is the admin sign-in form. errMsg is shown above the form when
// set.
func LoginPage(errMsg string) g.Node {
	input := func(label, name, typ string) g.Node {
		return Div(
			Label(g.Attr("for", name), Class("mb-1 block text-sm font-medium"), g.Text(label)),
			Input(ID(name), Name(name), Type(typ), Required(), Class("w-full rounded border border-gray-300 px-3 py-2")),
		)
	}
	return shell("Admin Login",
		H1(Class("mb-6 text-2xl font-bold"), g.Text("Admin Login")),
		g.If(errMsg != "", P(Class("mb-4 rounded bg-red-100 px-4 py-2 text-red-800"), g.Text(errMsg))),
		Form(Action("/admin/login"), Method("post"), Class("max-w-sm space-y-4"),
			input("Username", "username", "text"),
			input("Password", "password", "password"),
			Button(Type("submit"), Class("rounded bg-blue-600 px-4 py-2 text-white"), g.Text("Sign in")),
		),
	)
}

// ErrorPage reports a failed admin request.
func ErrorPage(msg string) g.Node {
	return shell("Error",
		H1(Class("mb-4 text-2xl font-bold"), g.Text("Something went wrong")),
		P(g.Text(msg)),
		P(Class("mt-4"), A(Href("/admin/dashboard"), Class("text-blue-600 underline"), g.Text("Back to dashboard"))),
	)
}

func percent(part, total int64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", 100*float64(part)/float64(total))
}

// DashboardPage shows visit counts, the light/dark split and recent visits.
func DashboardPage(stats *store.Stats) g.Node {
	card := func(label string, value int64) g.Node {
		return Div(Class("rounded-lg bg-white p-4 shadow"),
			P(Class("text-sm text-gray-500"), g.Text(label)),
			P(Class("text-2xl font-bold"), g.Textf("%d", value)),
		)
	}
	themed := stats.DarkThemeUsers + stats.LightThemeUsers

	return shell("Admin Dashboard",
		Div(Class("mb-8 flex items-center justify-between"),
			H1(Class("text-2xl font-bold"), g.Text("Dashboard")),
			Div(Class("flex gap-4 text-sm"),
				A(Href("/admin/export/stats"), Class("text-blue-600 underline"), g.Text("Export")),
				A(Href("/admin/logout"), Class("text-blue-600 underline"), g.Text("Log out")),
			),
		),
		Div(Class("grid grid-cols-2 gap-4 md:grid-cols-4"),
			card("Total visits", stats.TotalVisitors),
			card("Unique visitors", stats.UniqueVisitors),
			card("Today", stats.VisitorsToday),
			card("This week", stats.VisitorsThisWeek),
		),
		H2(Class("mb-2 mt-10 text-xl font-semibold"), g.Text("Theme preference")),
		P(ID("theme-split"),
			g.Textf("Dark %d (%s) · Light %d (%s)",
				stats.DarkThemeUsers, percent(stats.DarkThemeUsers, themed),
				stats.LightThemeUsers, percent(stats.LightThemeUsers, themed)),
		),
		H2(Class("mb-2 mt-10 text-xl font-semibold"), g.Text("Recent visitors")),
		Table(Class("w-full text-left text-sm"),
			THead(Tr(Th(g.Text("Time")), Th(g.Text("Visitor")), Th(g.Text("Path")), Th(g.Text("User agent")))),
			TBody(g.Map(stats.RecentVisitors, func(v store.VisitorMetric) g.Node {
				return Tr(Class("border-t border-gray-200"),
					Td(g.Text(v.Timestamp.Format("2006-01-02 15:04"))),
					Td(Class("font-mono"), g.Text(v.HashedIP)),
					Td(g.Text(v.Path)),
					Td(Class("truncate"), g.Text(v.UserAgent)),
				)
			})),
		),
	)
}

// PrivacyPage explains what the site records.
func PrivacyPage() g.Node {
	return shell("Privacy Policy",
		H1(Class("mb-6 text-2xl font-bold"), g.Text("Privacy Policy")),
		Div(Class("space-y-4"),
			P(g.Text("Page views are recorded with a salted hash of your IP address, your browser's user agent and the page path. The raw IP address is never stored.")),
			P(g.Text("Your light or dark theme choice is stored against an anonymous cookie so it survives a reload.")),
			P(g.Text("Requests carrying a Do Not Track header are not recorded. Visit records are deleted after the retention period.")),
			P(g.Text("Messages sent through the contact form go to the server log and nowhere else.")),
		),
	)
}

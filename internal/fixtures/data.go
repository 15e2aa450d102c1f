package fixtures

import "github.com/fintaskReza/opzer-dash/internal/profitability"

var teamMembers = []profitability.TeamMember{
	{Name: "Michael Argento", Role: "CFO", CostRate: 70, BillingRate: 185, Status: profitability.StatusActive, CapacityHoursPerMonth: 140, Location: profitability.LocationOnshore},
	{Name: "Michelle Ratcliffe", Role: "CFO", CostRate: 72, BillingRate: 190, Status: profitability.StatusActive, CapacityHoursPerMonth: 140, Location: profitability.LocationOnshore},
	{Name: "Suzanna Neville", Role: "Accounting Manager", CostRate: 49, BillingRate: 125, Status: profitability.StatusActive, CapacityHoursPerMonth: 140, Location: profitability.LocationOnshore},
	{Name: "Tori Patriquin", Role: "Accounting Manager", CostRate: 39, BillingRate: 115, Status: profitability.StatusActive, CapacityHoursPerMonth: 140, Location: profitability.LocationOnshore},
	{Name: "Eloisa Ortega", Role: "Bookkeeper", CostRate: 18, BillingRate: 80, Status: profitability.StatusActive, CapacityHoursPerMonth: 140, Location: profitability.LocationOffshore},
	{Name: "Mikki Abragan", Role: "Bookkeeper", CostRate: 16, BillingRate: 80, Status: profitability.StatusActive, CapacityHoursPerMonth: 140, Location: profitability.LocationOffshore},
	{Name: "Jean Bodiongan", Role: "Bookkeeper", CostRate: 30, BillingRate: 85, Status: profitability.StatusActive, CapacityHoursPerMonth: 140, Location: profitability.LocationOffshore},
	{Name: "Temi Oluwatosin", Role: "Bookkeeper", CostRate: 36, BillingRate: 80, Status: profitability.StatusInactive, CapacityHoursPerMonth: 0, Location: profitability.LocationOnshore},
	{Name: "Gabby Hergt", Role: "Bookkeeper", CostRate: 39, BillingRate: 80, Status: profitability.StatusInactive, CapacityHoursPerMonth: 0, Location: profitability.LocationOnshore},
	{Name: "Jordy Guillon", Role: "CFO", CostRate: 46, BillingRate: 185, Status: profitability.StatusInactive, CapacityHoursPerMonth: 0, Location: profitability.LocationOnshore},
	{Name: "Domenick Bartuccio", Role: "CFO", CostRate: 95, BillingRate: 185, Status: profitability.StatusInactive, CapacityHoursPerMonth: 0, Location: profitability.LocationOnshore},
	{Name: "Rachel Brinac", Role: "Accounting Manager", CostRate: 49, BillingRate: 120, Status: profitability.StatusInactive, CapacityHoursPerMonth: 0, Location: profitability.LocationOnshore},
}

var clients = []profitability.Client{
	{CanonicalName: "Intrigue Media Solutions Inc.", ExternalName: "Intrigue Media Solutions Inc.", Status: profitability.StatusActive},
	{CanonicalName: "Protrack (12372169 Canada Inc)", ExternalName: "12372169 Canada Inc. DBA Protrack Ltd.", Status: profitability.StatusActive},
	{CanonicalName: "9thCO Inc.", ExternalName: "9thCO Inc.", Status: profitability.StatusActive},
	{CanonicalName: "Morweb CMS Inc.", ExternalName: "Morweb CMS Inc.", Status: profitability.StatusActive},
	{CanonicalName: "Merging Workforce Inc.", ExternalName: "Merging Workforce Inc.", Status: profitability.StatusActive},
	{CanonicalName: "Gotcha!", ExternalName: "Gotcha!", Status: profitability.StatusActive},
	{CanonicalName: "Banch Marketing Ltd", ExternalName: "Banch Marketing Ltd", Status: profitability.StatusActive},
	{CanonicalName: "MYDWARE IT Solutions Inc.", ExternalName: "MYDWARE IT Solutions Inc.", Status: profitability.StatusActive},
	{CanonicalName: "Hyland Landscapes Ltd", ExternalName: "Hyland Landscapes Ltd", Status: profitability.StatusActive},
	{CanonicalName: "Dealer Media", ExternalName: "Dealer Media", Status: profitability.StatusActive},
	{CanonicalName: "1497202 Alberta Ltd (E-Patches & Crests)", ExternalName: "1497202 Alberta Ltd (E-Patches & Crests)", Status: profitability.StatusActive},
	{CanonicalName: "Pixelbot Technology Inc.", ExternalName: "Pixelbot Technology Inc.", Status: profitability.StatusActive},
	{CanonicalName: "Zen Ventures Inc.", ExternalName: "Phil Kim", Status: profitability.StatusActive},
	{CanonicalName: "Sun Capital Corporate Construction (SCC Construction)", ExternalName: "Phil Kim", Status: profitability.StatusActive},
	{CanonicalName: "0707892 BC Ltd Metropole Investments Limited Partnership", ExternalName: "Phil Kim", Status: profitability.StatusActive},
	{CanonicalName: "Phil Kim", ExternalName: "Phil Kim", Status: profitability.StatusActive},
	{CanonicalName: "Crowder Family Incorporated", ExternalName: "Crowder Family Incorporated", Status: profitability.StatusActive},
	{CanonicalName: "Align Climate Solutions", ExternalName: "Align Climate Solutions", Status: profitability.StatusActive},
	{CanonicalName: "Vandal Merch House Inc.", ExternalName: "Vandal Merch House Inc.", Status: profitability.StatusActive},
	{CanonicalName: "Form Collective", ExternalName: "Form Collective", Status: profitability.StatusActive},
	{CanonicalName: "Olive Technologies Inc", ExternalName: "Olive Technologies Inc", Status: profitability.StatusActive},
	{CanonicalName: "The Canada Magazine", ExternalName: "The Canada Magazine", Status: profitability.StatusActive},
	{CanonicalName: "Kykeon Analytics Ltd", ExternalName: "Kykeon Analytics Ltd", Status: profitability.StatusActive},
	{CanonicalName: "West Coast Centre for Sex Therapy Ltd.", ExternalName: "West Coast Centre for Sex Therapy Ltd.", Status: profitability.StatusActive},
	{CanonicalName: "Think Water Filtration Inc.", ExternalName: "Think Water Filtration Inc.", Status: profitability.StatusActive},
	{CanonicalName: "Tommy Media Inc.", ExternalName: "Tommy Media Inc.", Status: profitability.StatusActive},
	{CanonicalName: "1Up Digital Marketing", ExternalName: "1Up Digital Marketing", Status: profitability.StatusActive},
	{CanonicalName: "42O Blaze Capital Corp.", ExternalName: "Blaze Capital", Status: profitability.StatusActive},
	{CanonicalName: "Peter Zarkadas MD FRCSC Inc.", ExternalName: "Peter Zarkadas MD FRCSC Inc.", Status: profitability.StatusActive},
	{CanonicalName: "JMB Ventures Inc.", ExternalName: "JMB Ventures Inc.", Status: profitability.StatusActive},
	{CanonicalName: "Burnaby Grills", ExternalName: "Burnaby Grills", Status: profitability.StatusActive},
	{CanonicalName: "Misim Modelling Inc", ExternalName: "Misim Modelling Inc", Status: profitability.StatusActive},
	{CanonicalName: "Lyftlyfe Athletics Inc.", ExternalName: "Lyftlyfe Athletics Inc.", Status: profitability.StatusActive},
	{CanonicalName: "Strength Connected Fitness Ltd.", ExternalName: "Strength Connected Fitness Ltd.", Status: profitability.StatusActive},
	{CanonicalName: "1224746 B.C. Ltd. (Valley Vapes Inc.)", ExternalName: "1224746 B.C. Ltd.", Status: profitability.StatusActive},
	{CanonicalName: "Bodypulse Fitness Studio Ltd.", ExternalName: "BODYPULSE FITNESS STUDIO LTD", Status: profitability.StatusActive},
	{CanonicalName: "Cittabase Solutions Incorporated", ExternalName: "Cittabase Solutions Incorporated", Status: profitability.StatusActive},
	{CanonicalName: "Bokuria Creative", ExternalName: "Bokuria Creative", Status: profitability.StatusActive},
	{CanonicalName: "Hanson Land and Sea", ExternalName: "Hanson Land and Sea", Status: profitability.StatusActive},
	{CanonicalName: "HL Networks Inc. (dba Davinci Technology Solutions)", ExternalName: "DAVINCI TECHNOLOGY SOLUTIONS", Status: profitability.StatusActive},
	{CanonicalName: "TNB Plumbing Heating Air Conditioning Ltd.", ExternalName: "TNB Plumbing Heating Air Conditioning Ltd.", Status: profitability.StatusActive},
	{CanonicalName: "Gibraltar Construction", ExternalName: "Gibraltar Holdings Ltd.", Status: profitability.StatusActive},
	{CanonicalName: "B4 Networks Inc.", ExternalName: "B4 Networks Inc.", Status: profitability.StatusActive},
	{CanonicalName: "BuildPilot Ltd.", ExternalName: "BuildPilot Ltd.", Status: profitability.StatusActive},
	{CanonicalName: "Mash Strategy", ExternalName: "Mash Strategy", Status: profitability.StatusActive},
}

var timeEntries = []profitability.TimeEntry{
	{ClientName: "B4 Networks Inc.", TeamMember: "Jean Bodiongan", HoursLogged: 1.02, Date: "2025-07-30", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "Bodypulse Fitness Studio Ltd.", TeamMember: "Michelle Ratcliffe", HoursLogged: 5.3, Date: "2025-06-25", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Pixelbot Technology Inc.", TeamMember: "Mikki Abragan", HoursLogged: 9.11, Date: "2025-07-30", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "0707892 BC Ltd Metropole Investments Limited Partnership", TeamMember: "Suzanna Neville", HoursLogged: 2.36, Date: "2025-06-15", ServiceTag: "Controller / Accounting", Billable: true},
	{ClientName: "Think Water Filtration Inc.", TeamMember: "Jean Bodiongan", HoursLogged: 8.08, Date: "2025-06-18", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "TNB Plumbing Heating Air Conditioning Ltd.", TeamMember: "Suzanna Neville", HoursLogged: 6.3, Date: "2025-06-09", ServiceTag: "Payroll", Billable: true},
	{ClientName: "Zen Ventures Inc.", TeamMember: "Michelle Ratcliffe", HoursLogged: 2.77, Date: "2025-08-02", ServiceTag: "Financial Reporting", Billable: true},
	{ClientName: "Morweb CMS Inc.", TeamMember: "Tori Patriquin", HoursLogged: 1.31, Date: "2025-08-16", ServiceTag: "Controller / Accounting", Billable: true},
	{ClientName: "Sun Capital Corporate Construction (SCC Construction)", TeamMember: "Michael Argento", HoursLogged: 7.45, Date: "2025-06-21", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "1224746 B.C. Ltd. (Valley Vapes Inc.)", TeamMember: "Suzanna Neville", HoursLogged: 7.71, Date: "2025-06-09", ServiceTag: "Controller / Accounting", Billable: true},
	{ClientName: "Misim Modelling Inc", TeamMember: "Michelle Ratcliffe", HoursLogged: 9.98, Date: "2025-06-13", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "The Canada Magazine", TeamMember: "Michael Argento", HoursLogged: 8.87, Date: "2025-06-19", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Phil Kim", TeamMember: "Suzanna Neville", HoursLogged: 1.51, Date: "2025-08-21", ServiceTag: "Controller / Accounting", Billable: true},
	{ClientName: "Hanson Land and Sea", TeamMember: "Michael Argento", HoursLogged: 3.65, Date: "2025-07-27", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Dealer Media", TeamMember: "Michelle Ratcliffe", HoursLogged: 2.71, Date: "2025-07-05", ServiceTag: "Financial Reporting", Billable: true},
	{ClientName: "HL Networks Inc. (dba Davinci Technology Solutions)", TeamMember: "Mikki Abragan", HoursLogged: 4.3, Date: "2025-08-21", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "Merging Workforce Inc.", TeamMember: "Mikki Abragan", HoursLogged: 14.74, Date: "2025-07-09", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "Tommy Media Inc.", TeamMember: "Jean Bodiongan", HoursLogged: 12.58, Date: "2025-07-15", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "Cittabase Solutions Incorporated", TeamMember: "Michelle Ratcliffe", HoursLogged: 12.38, Date: "2025-07-10", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Crowder Family Incorporated", TeamMember: "Jean Bodiongan", HoursLogged: 9.41, Date: "2025-07-08", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "Gibraltar Construction", TeamMember: "Michael Argento", HoursLogged: 6.05, Date: "2025-07-28", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Bokuria Creative", TeamMember: "Michael Argento", HoursLogged: 5.52, Date: "2025-08-21", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Align Climate Solutions", TeamMember: "Michael Argento", HoursLogged: 1.29, Date: "2025-08-11", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Lyftlyfe Athletics Inc.", TeamMember: "Jean Bodiongan", HoursLogged: 12.52, Date: "2025-06-21", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "Strength Connected Fitness Ltd.", TeamMember: "Tori Patriquin", HoursLogged: 4.62, Date: "2025-08-10", ServiceTag: "Payroll", Billable: true},
	{ClientName: "Olive Technologies Inc", TeamMember: "Jean Bodiongan", HoursLogged: 12.03, Date: "2025-06-26", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "Form Collective", TeamMember: "Michelle Ratcliffe", HoursLogged: 1.99, Date: "2025-07-29", ServiceTag: "Financial Reporting", Billable: true},
	{ClientName: "Intrigue Media Solutions Inc.", TeamMember: "Eloisa Ortega", HoursLogged: 8.46, Date: "2025-06-02", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "Peter Zarkadas MD FRCSC Inc.", TeamMember: "Domenick Bartuccio", HoursLogged: 1.37, Date: "2025-08-31", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Banch Marketing Ltd", TeamMember: "Tori Patriquin", HoursLogged: 2.51, Date: "2025-07-06", ServiceTag: "Controller / Accounting", Billable: true},
	{ClientName: "Vandal Merch House Inc.", TeamMember: "Michael Argento", HoursLogged: 11.22, Date: "2025-07-04", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "1Up Digital Marketing", TeamMember: "Michael Argento", HoursLogged: 1.3, Date: "2025-06-06", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Hyland Landscapes Ltd", TeamMember: "Tori Patriquin", HoursLogged: 10.05, Date: "2025-06-10", ServiceTag: "Controller / Accounting", Billable: true},
	{ClientName: "9thCO Inc.", TeamMember: "Domenick Bartuccio", HoursLogged: 6.21, Date: "2025-06-27", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "42O Blaze Capital Corp.", TeamMember: "Tori Patriquin", HoursLogged: 4.9, Date: "2025-07-15", ServiceTag: "Controller / Accounting", Billable: true},
	{ClientName: "Kykeon Analytics Ltd", TeamMember: "Domenick Bartuccio", HoursLogged: 12.2, Date: "2025-07-21", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Burnaby Grills", TeamMember: "Jean Bodiongan", HoursLogged: 3.54, Date: "2025-06-14", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "West Coast Centre for Sex Therapy Ltd.", TeamMember: "Mikki Abragan", HoursLogged: 3.88, Date: "2025-07-12", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "BuildPilot Ltd.", TeamMember: "Jean Bodiongan", HoursLogged: 12.67, Date: "2025-07-18", ServiceTag: "Bookkeeping", Billable: true},
	{ClientName: "MYDWARE IT Solutions Inc.", TeamMember: "Domenick Bartuccio", HoursLogged: 1.6, Date: "2025-06-01", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "JMB Ventures Inc.", TeamMember: "Tori Patriquin", HoursLogged: 8.53, Date: "2025-08-23", ServiceTag: "Controller / Accounting", Billable: true},
	{ClientName: "Protrack (12372169 Canada Inc)", TeamMember: "Domenick Bartuccio", HoursLogged: 12.8, Date: "2025-07-07", ServiceTag: "CFO Advisory", Billable: true},
	{ClientName: "Gotcha!", TeamMember: "Tori Patriquin", HoursLogged: 1.28, Date: "2025-08-20", ServiceTag: "Controller / Accounting", Billable: true},
	{ClientName: "1497202 Alberta Ltd (E-Patches & Crests)", TeamMember: "Suzanna Neville", HoursLogged: 14.78, Date: "2025-06-28", ServiceTag: "Payroll", Billable: true},
}

var budgets = []profitability.BudgetEntry{
	{ClientName: "Merging Workforce Inc.", Budget: 8500},
	{ClientName: "Peter Zarkadas MD FRCSC Inc.", Budget: 11000},
	{ClientName: "Pixelbot Technology Inc.", Budget: 8000},
	{ClientName: "Burnaby Grills", Budget: 9000},
	{ClientName: "West Coast Centre for Sex Therapy Ltd.", Budget: 8500},
	{ClientName: "MYDWARE IT Solutions Inc.", Budget: 6000},
	{ClientName: "9thCO Inc.", Budget: 8500},
	{ClientName: "BuildPilot Ltd.", Budget: 7000},
	{ClientName: "42O Blaze Capital Corp.", Budget: 6500},
	{ClientName: "Lyftlyfe Athletics Inc.", Budget: 7500},
	{ClientName: "HL Networks Inc. (dba Davinci Technology Solutions)", Budget: 5500},
	{ClientName: "Bokuria Creative", Budget: 7500},
	{ClientName: "Phil Kim", Budget: 7500},
	{ClientName: "Intrigue Media Solutions Inc.", Budget: 8000},
	{ClientName: "Vandal Merch House Inc.", Budget: 5500},
	{ClientName: "1Up Digital Marketing", Budget: 6000},
	{ClientName: "Think Water Filtration Inc.", Budget: 7000},
	{ClientName: "Kykeon Analytics Ltd", Budget: 2500},
	{ClientName: "Cittabase Solutions Incorporated", Budget: 2000},
	{ClientName: "JMB Ventures Inc.", Budget: 3000},
	{ClientName: "Misim Modelling Inc", Budget: 5000},
	{ClientName: "Crowder Family Incorporated", Budget: 5000},
	{ClientName: "Tommy Media Inc.", Budget: 5500},
	{ClientName: "Strength Connected Fitness Ltd.", Budget: 5500},
	{ClientName: "Gibraltar Construction", Budget: 2500},
	{ClientName: "Hanson Land and Sea", Budget: 1500},
	{ClientName: "Hyland Landscapes Ltd", Budget: 2000},
	{ClientName: "Morweb CMS Inc.", Budget: 3500},
	{ClientName: "The Canada Magazine", Budget: 1200},
	{ClientName: "TNB Plumbing Heating Air Conditioning Ltd.", Budget: 2500},
	{ClientName: "1497202 Alberta Ltd (E-Patches & Crests)", Budget: 7000},
	{ClientName: "Dealer Media", Budget: 2500},
	{ClientName: "B4 Networks Inc.", Budget: 5500},
	{ClientName: "Form Collective", Budget: 3500},
	{ClientName: "Olive Technologies Inc", Budget: 4000},
	{ClientName: "Banch Marketing Ltd", Budget: 5000},
	{ClientName: "Protrack (12372169 Canada Inc)", Budget: 4500},
	{ClientName: "Gotcha!", Budget: 5000},
	{ClientName: "Bodypulse Fitness Studio Ltd.", Budget: 2500},
	{ClientName: "1224746 B.C. Ltd. (Valley Vapes Inc.)", Budget: 2000},
	{ClientName: "Align Climate Solutions", Budget: 5000},
}

// rawRevenue carries billing-system client names, before normalization.
var rawRevenue = []profitability.RevenueEntry{
	{ClientName: "Cittabase Solutions Incorporated", Amount: 1899.94, Date: "2025-08-01"},
	{ClientName: "DAVINCI TECHNOLOGY SOLUTIONS", Amount: 6403.9, Date: "2025-07-21"},
	{ClientName: "Bokuria Creative", Amount: 6746.96, Date: "2025-07-05"},
	{ClientName: "Phil Kim", Amount: 6794.31, Date: "2025-06-29"},
	{ClientName: "Think Water Filtration Inc.", Amount: 6522.41, Date: "2025-06-23"},
	{ClientName: "Intrigue Media Solutions Inc.", Amount: 9000.76, Date: "2025-07-09"},
	{ClientName: "Gotcha!", Amount: 5477.85, Date: "2025-08-14"},
	{ClientName: "JMB Ventures Inc.", Amount: 2954.57, Date: "2025-08-22"},
	{ClientName: "Align Climate Solutions", Amount: 4792.7, Date: "2025-08-17"},
	{ClientName: "Banch Marketing Ltd", Amount: 5136.95, Date: "2025-07-19"},
	{ClientName: "Burnaby Grills", Amount: 8891.05, Date: "2025-06-28"},
	{ClientName: "Kykeon Analytics Ltd", Amount: 2153.52, Date: "2025-06-25"},
	{ClientName: "1Up Digital Marketing", Amount: 6798.29, Date: "2025-06-03"},
	{ClientName: "Crowder Family Incorporated", Amount: 4399.74, Date: "2025-06-06"},
	{ClientName: "Peter Zarkadas MD FRCSC Inc.", Amount: 9811.6, Date: "2025-08-25"},
	{ClientName: "The Canada Magazine", Amount: 1067.42, Date: "2025-06-24"},
	{ClientName: "TNB Plumbing Heating Air Conditioning Ltd.", Amount: 2191.82, Date: "2025-06-30"},
	{ClientName: "Misim Modelling Inc", Amount: 5993.64, Date: "2025-07-01"},
	{ClientName: "Hanson Land and Sea", Amount: 1237.36, Date: "2025-08-07"},
	{ClientName: "Pixelbot Technology Inc.", Amount: 9101.97, Date: "2025-06-28"},
	{ClientName: "B4 Networks Inc.", Amount: 6161.74, Date: "2025-08-25"},
	{ClientName: "Blaze Capital", Amount: 7608.18, Date: "2025-06-07"},
	{ClientName: "Strength Connected Fitness Ltd.", Amount: 5073.34, Date: "2025-08-24"},
	{ClientName: "Hyland Landscapes Ltd", Amount: 1822.77, Date: "2025-08-24"},
	{ClientName: "Form Collective", Amount: 2951.76, Date: "2025-06-13"},
	{ClientName: "Olive Technologies Inc", Amount: 4403.01, Date: "2025-06-02"},
	{ClientName: "Vandal Merch House Inc.", Amount: 4699.4, Date: "2025-08-25"},
	{ClientName: "Tommy Media Inc.", Amount: 6123.96, Date: "2025-06-20"},
	{ClientName: "1497202 Alberta Ltd (E-Patches & Crests)", Amount: 6688.96, Date: "2025-07-25"},
	{ClientName: "West Coast Centre for Sex Therapy Ltd.", Amount: 7415.2, Date: "2025-06-20"},
	{ClientName: "MYDWARE IT Solutions Inc.", Amount: 7080.99, Date: "2025-06-20"},
	{ClientName: "Morweb CMS Inc.", Amount: 3069.89, Date: "2025-06-18"},
	{ClientName: "9thCO Inc.", Amount: 7442.19, Date: "2025-07-03"},
	{ClientName: "Lyftlyfe Athletics Inc.", Amount: 6757.12, Date: "2025-08-19"},
	{ClientName: "1224746 B.C. Ltd.", Amount: 2502.55, Date: "2025-08-26"},
	{ClientName: "Gibraltar Holdings Ltd.", Amount: 2143.95, Date: "2025-06-11"},
	{ClientName: "Merging Workforce Inc.", Amount: 9993.03, Date: "2025-06-15"},
	{ClientName: "12372169 Canada Inc. DBA Protrack Ltd.", Amount: 4983.49, Date: "2025-08-20"},
	{ClientName: "BODYPULSE FITNESS STUDIO LTD", Amount: 2185.41, Date: "2025-08-11"},
	{ClientName: "Dealer Media", Amount: 2103.99, Date: "2025-06-15"},
	{ClientName: "BuildPilot Ltd.", Amount: 7350.93, Date: "2025-07-26"},
}

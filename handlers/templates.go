// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "html/template"

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Community Water Allocation</title>
  <style>
    body { font-family: sans-serif; margin: 2rem; }
    table { border-collapse: collapse; margin-bottom: 2rem; }
    th, td { border: 1px solid #999; padding: 0.4rem 0.8rem; text-align: right; }
    th { background: #e8f0f8; }
    td:first-child, th:first-child { text-align: left; }
    .shortage { color: #b00; font-weight: bold; }
    form { margin-bottom: 1rem; }
  </style>
</head>
<body>
  <h1>Community Water Allocation</h1>

  <table>
    <tr>
      <th>Community</th>
      <th>Population</th>
      <th>Avg Usage</th>
      <th>Current Supply</th>
      <th>Rainfall</th>
      <th>Temperature</th>
      <th>Predicted Demand</th>
      <th>Shortage</th>
      <th>Optimized Share</th>
      <th>Final Supply</th>
      <th>Payment</th>
    </tr>
    {{range .}}
    <tr>
      <td>{{.Community}}</td>
      <td>{{.Population}}</td>
      <td>{{printf "%.2f" .AvgUsage}}</td>
      <td>{{printf "%.2f" .CurrentSupply}}</td>
      <td>{{.Rainfall}}</td>
      <td>{{.Temperature}}</td>
      <td>{{printf "%.2f" .PredictedDemand}}</td>
      <td>{{if .Shortage}}<span class="shortage">yes</span>{{else}}no{{end}}</td>
      <td>{{printf "%.2f" .OptimizedShare}}</td>
      <td>{{printf "%.2f" .FinalSupply}}</td>
      <td>{{printf "%.4f" .Payment}}</td>
    </tr>
    {{else}}
    <tr><td colspan="11">No communities registered yet.</td></tr>
    {{end}}
  </table>

  <h2>Add Community</h2>
  <form method="POST" action="/add_community">
    <label>Name <input type="text" name="name" required></label>
    <label>Population <input type="number" name="population" min="0" required></label>
    <button type="submit">Add</button>
  </form>

  <h2>Add Usage</h2>
  <form method="POST" action="/add_usage">
    <label>Community
      <select name="community_id">
        {{range .}}<option value="{{.CommunityID}}">{{.Community}}</option>{{end}}
      </select>
    </label>
    <label>Date <input type="date" name="date" required></label>
    <label>Usage <input type="number" name="usage" required></label>
    <button type="submit">Record</button>
  </form>
</body>
</html>
`
